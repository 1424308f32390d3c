package main

import (
	"fmt"
	"net/http"

	"github.com/rfphub/backend/internal/middleware"
	"github.com/rfphub/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.Before(middleware.AllowCors)
	s.router.Before(middleware.NewAuthVerifier().Middleware())
	s.router.AddCloser(middleware.Logger())

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate)
	{
		// Proposal API
		router.POST(authRouter, "/createProposal", s.proposalDomain.Create)
		router.POST(authRouter, "/updateProposal", s.proposalDomain.Update)
		router.GET(authRouter, "/getMyProposals", s.proposalDomain.GetMyList)

		// Collaboration API
		router.POST(authRouter, "/createCollaboration", s.collaborationDomain.Create)
		router.GET(authRouter, "/getCollaborations", s.collaborationDomain.GetList)
		router.GET(authRouter, "/getMyCollaborations", s.collaborationDomain.GetMyList)
		router.POST(authRouter, "/updateCollaborationRole", s.collaborationDomain.UpdateRole)
		router.POST(authRouter, "/deleteCollaboration", s.collaborationDomain.Delete)

		// Question API
		router.POST(authRouter, "/createQuestion", s.questionDomain.Create)
		router.POST(authRouter, "/deleteQuestion", s.questionDomain.Delete)

		// Answer API
		router.POST(authRouter, "/saveAnswer", s.answerDomain.Save)
		router.POST(authRouter, "/bulkSaveAnswers", s.answerDomain.BulkSave)
		router.POST(authRouter, "/reviewAnswer", s.answerDomain.Review)
		router.POST(authRouter, "/setAnswerLock", s.answerDomain.SetLock)

		// Comment API
		router.POST(authRouter, "/addComment", s.commentDomain.Add)

		// Suggestion API
		router.POST(authRouter, "/proposeSuggestion", s.suggestionDomain.Propose)
		router.POST(authRouter, "/resolveSuggestion", s.suggestionDomain.Resolve)
		router.POST(authRouter, "/applySuggestion", s.suggestionDomain.Apply)

		// Notification API
		router.GET(authRouter, "/getNotifications", s.notificationDomain.GetList)
		router.POST(authRouter, "/markNotificationRead", s.notificationDomain.MarkRead)
		router.POST(authRouter, "/markAllNotificationsRead", s.notificationDomain.MarkAllRead)
		router.POST(authRouter, "/dismissNotification", s.notificationDomain.Dismiss)
	}

	// Read APIs authorize through the access resolver, so an anonymous
	// caller is still rejected unless the proposal grants access.
	router.GET(s.router, "/getProposal", s.proposalDomain.Get)
	router.GET(s.router, "/getQuestions", s.questionDomain.GetList)
	router.GET(s.router, "/getAnswers", s.answerDomain.GetList)
	router.GET(s.router, "/getComments", s.commentDomain.GetList)
	router.GET(s.router, "/getSuggestions", s.suggestionDomain.GetList)
}
