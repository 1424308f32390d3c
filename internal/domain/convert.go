package domain

import (
	"time"

	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
)

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:   user.ID,
		Name: user.Name,
		Role: string(user.Role),
	}
}

func convertProposal(proposal *entity.Proposal) model.Proposal {
	if proposal == nil {
		return model.Proposal{}
	}

	return model.Proposal{
		ID:          proposal.ID,
		CreatedAt:   proposal.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   proposal.UpdatedAt.Format(time.RFC3339Nano),
		CreatedBy:   proposal.CreatedBy,
		Title:       proposal.Title,
		Description: proposal.Description,
		Status:      string(proposal.Status),
		Content:     string(proposal.Content),
	}
}

func convertCapabilities(caps common.Capabilities) model.Capabilities {
	return model.Capabilities{
		CanView:       caps.CanView,
		CanEdit:       caps.CanEdit,
		CanComment:    caps.CanComment,
		CanReview:     caps.CanReview,
		CanGenerateAI: caps.CanGenerateAI,
	}
}

func convertQuestion(question *entity.Question) model.Question {
	if question == nil {
		return model.Question{}
	}

	return model.Question{
		ID:         question.ID,
		ProposalID: question.ProposalID,
		Text:       question.Text,
		Position:   question.Position,
		Source:     string(question.Source),
	}
}

func convertAnswer(answer *entity.Answer) model.Answer {
	if answer == nil {
		return model.Answer{}
	}

	return model.Answer{
		QuestionID: answer.QuestionID,
		ProposalID: answer.ProposalID,
		Text:       answer.Text,
		Status:     string(answer.Status),
		Locked:     answer.Locked,
		Version:    answer.Version,
		UpdatedAt:  answer.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func convertComment(comment *entity.Comment) model.Comment {
	if comment == nil {
		return model.Comment{}
	}

	return model.Comment{
		ID:         comment.ID,
		ProposalID: comment.ProposalID,
		AnswerID:   comment.AnswerID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
		ParentID:   comment.ParentID.String,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339Nano),
	}
}

func convertSuggestion(suggestion *entity.Suggestion) model.Suggestion {
	if suggestion == nil {
		return model.Suggestion{}
	}

	return model.Suggestion{
		ID:            suggestion.ID,
		ProposalID:    suggestion.ProposalID,
		AnswerID:      suggestion.AnswerID,
		ProposerID:    suggestion.ProposerID,
		ProposerName:  suggestion.ProposerName,
		SuggestedText: suggestion.SuggestedText,
		Note:          suggestion.Note,
		Status:        string(suggestion.Status),
		CreatedAt:     suggestion.CreatedAt.Format(time.RFC3339Nano),
	}
}

func convertNotification(notification *entity.Notification) model.Notification {
	if notification == nil {
		return model.Notification{}
	}

	return model.Notification{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Link:      notification.Link,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339Nano),
	}
}
