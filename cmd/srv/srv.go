package main

import (
	"context"
	"net/http"

	"github.com/rfphub/backend/config"
	"github.com/rfphub/backend/internal/domain"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/logger"
	"github.com/rfphub/backend/pkg/router"
	"github.com/rfphub/backend/pkg/xcontext"
	"github.com/rfphub/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB
	redis   xredis.Client

	userRepo          repository.UserRepository
	proposalRepo      repository.ProposalRepository
	collaborationRepo repository.CollaborationRepository
	questionRepo      repository.QuestionRepository
	answerRepo        repository.AnswerRepository
	commentRepo       repository.CommentRepository
	suggestionRepo    repository.SuggestionRepository
	notificationRepo  repository.NotificationRepository

	notifier            *domain.Notifier
	proposalDomain      domain.ProposalDomain
	collaborationDomain domain.CollaborationDomain
	questionDomain      domain.QuestionDomain
	answerDomain        domain.AnswerDomain
	commentDomain       domain.CommentDomain
	suggestionDomain    domain.SuggestionDomain
	notificationDomain  domain.NotificationDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	var err error
	s.configs, err = config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	ctx := xcontext.WithConfigs(context.Background(), s.configs)

	var err error
	s.redis, err = xredis.NewClient(ctx)
	if err != nil {
		// The unread counter falls back to database counts without redis.
		s.logger.Warnf("Cannot connect to redis: %v", err)
		s.redis = nil
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.proposalRepo = repository.NewProposalRepository()
	s.collaborationRepo = repository.NewCollaborationRepository()
	s.questionRepo = repository.NewQuestionRepository()
	s.answerRepo = repository.NewAnswerRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.suggestionRepo = repository.NewSuggestionRepository()
	s.notificationRepo = repository.NewNotificationRepository()
}

func (s *srv) loadDomains() {
	s.notifier = domain.NewNotifier(s.notificationRepo, s.redis)
	s.proposalDomain = domain.NewProposalDomain(s.proposalRepo, s.collaborationRepo)
	s.collaborationDomain = domain.NewCollaborationDomain(
		s.proposalRepo, s.collaborationRepo, s.userRepo)
	s.questionDomain = domain.NewQuestionDomain(
		s.proposalRepo, s.collaborationRepo, s.questionRepo, s.answerRepo)
	s.answerDomain = domain.NewAnswerDomain(
		s.proposalRepo, s.collaborationRepo, s.questionRepo, s.answerRepo)
	s.commentDomain = domain.NewCommentDomain(
		s.proposalRepo, s.collaborationRepo, s.answerRepo, s.commentRepo, s.userRepo, s.notifier)
	s.suggestionDomain = domain.NewSuggestionDomain(
		s.proposalRepo, s.collaborationRepo, s.answerRepo, s.suggestionRepo, s.userRepo, s.notifier)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo, s.redis)
}
