package testutil

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/repository"
)

// Fixture data shared by domain tests. User1 owns Proposal1; the other users
// collaborate on it with increasing capability.
var (
	User1 = entity.User{Base: entity.Base{ID: "user1"}, Name: "user1", Role: entity.RoleUser}
	User2 = entity.User{Base: entity.Base{ID: "user2"}, Name: "user2", Role: entity.RoleUser}
	User3 = entity.User{Base: entity.Base{ID: "user3"}, Name: "user3", Role: entity.RoleUser}
	User4 = entity.User{Base: entity.Base{ID: "user4"}, Name: "user4", Role: entity.RoleUser}
	Admin = entity.User{Base: entity.Base{ID: "admin"}, Name: "admin", Role: entity.RoleAdmin}

	Proposal1 = entity.Proposal{
		Base:      entity.Base{ID: "user1_proposal1"},
		CreatedBy: User1.ID,
		Title:     "User1 Proposal1",
		Status:    entity.ProposalDraft,
	}

	// User2 reviews, User3 comments, User4 has no grant at all.
	Collaboration1 = entity.Collaboration{
		ProposalID: Proposal1.ID,
		UserID:     User2.ID,
		Role:       entity.CollabReviewer,
		CreatedBy:  User1.ID,
	}
	Collaboration2 = entity.Collaboration{
		ProposalID: Proposal1.ID,
		UserID:     User3.ID,
		Role:       entity.CollabCommenter,
		CreatedBy:  User1.ID,
	}

	Question1 = entity.Question{
		Base:       entity.Base{ID: "proposal1_question1"},
		ProposalID: Proposal1.ID,
		Text:       "What is the project timeline?",
		Position:   1,
		Source:     entity.QuestionFromUser,
	}
	Question2 = entity.Question{
		Base:       entity.Base{ID: "proposal1_question2"},
		ProposalID: Proposal1.ID,
		Text:       "What is the total budget?",
		Position:   2,
		Source:     entity.QuestionFromTemplate,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertProposals(ctx)
	insertCollaborations(ctx)
	insertQuestions(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3, User4, Admin} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertProposals(ctx context.Context) {
	proposalRepo := repository.NewProposalRepository()

	proposal := Proposal1
	if err := proposalRepo.Create(ctx, &proposal); err != nil {
		panic(err)
	}
}

func insertCollaborations(ctx context.Context) {
	collaborationRepo := repository.NewCollaborationRepository()

	for _, collaboration := range []entity.Collaboration{Collaboration1, Collaboration2} {
		collaboration := collaboration
		if err := collaborationRepo.Create(ctx, &collaboration); err != nil {
			panic(err)
		}
	}
}

func insertQuestions(ctx context.Context) {
	questionRepo := repository.NewQuestionRepository()

	for _, question := range []entity.Question{Question1, Question2} {
		question := question
		if err := questionRepo.Create(ctx, &question); err != nil {
			panic(err)
		}
	}
}
