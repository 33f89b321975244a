package requestservice

import (
	"context"
	"errors"
	"fmt"
	requestrepo "squadup/api/repositories/request"
	userrepo "squadup/api/repositories/user"
	"squadup/pkg/apperrors"
	"squadup/pkg/discord"
	"squadup/pkg/messages"
	"squadup/pkg/session"

	"gorm.io/gorm"
)

const channelPrefix = "squad-up"

// Logger is the subset of the file logger used by the pipeline.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// RequestService records teammate requests and drives the channel
// provisioning on the messaging platform.
type RequestService struct {
	db      *gorm.DB
	discord discord.API
	logger  Logger
	baseURL string

	UserRepository    userrepo.UserRepository
	RequestRepository requestrepo.RequestRepository
}

// RequestServiceDeps is the dependency list for the request service.
type RequestServiceDeps struct {
	DB      *gorm.DB
	Discord discord.API
	Logger  Logger
	BaseURL string
}

// NewRequestService creates a service for handling teammate requests.
func NewRequestService(deps *RequestServiceDeps) *RequestService {
	return &RequestService{
		db:                deps.DB,
		discord:           deps.Discord,
		logger:            deps.Logger,
		baseURL:           deps.BaseURL,
		UserRepository:    userrepo.NewUserRepository(deps.DB),
		RequestRepository: requestrepo.NewRequestRepository(deps.DB),
	}
}

// SendResult is the observable outcome of a sent request.
type SendResult struct {
	ChannelURL string `json:"channelUrl"`
}

// notifyStep is one best-effort notification after the channel exists.
// Step failures are logged, never surfaced to the caller.
type notifyStep struct {
	name string
	run  func(ctx context.Context) error
}

// Send records the directed request and provisions the private channel.
// The request row is persisted once both users resolve; only the channel
// creation gates the result. There is no compensating rollback, a request
// without a channel is an accepted inconsistency.
func (rs *RequestService) Send(ctx context.Context, sess *session.Session, toDiscordID string) (*SendResult, error) {
	if toDiscordID == "" {
		return nil, apperrors.New(apperrors.CodeInvalid, messages.MissingTargetUser)
	}

	target, err := rs.UserRepository.GetByDiscordID(ctx, toDiscordID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, messages.TargetNotFound)
	}

	sender, err := rs.UserRepository.GetByDiscordID(ctx, sess.DiscordID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, messages.SenderNotFound)
	}

	request, err := rs.RequestRepository.Create(ctx, sender.ID, target.ID)
	if err != nil {
		return nil, err
	}

	channel, err := rs.discord.CreatePrivateChannel(ctx,
		channelName(sender.DiscordID, target.DiscordID),
		sender.DiscordID, target.DiscordID,
	)
	if err != nil {
		return nil, mapDiscordError(err)
	}

	rs.logger.Infof("request %s: channel %s created", request.ID, channel.ID)

	channelURL := rs.discord.ChannelURL(channel.ID)
	profileURL := fmt.Sprintf("%s/u/%s", rs.baseURL, sender.DiscordID)

	senderName := sess.Name
	if senderName == "" {
		senderName = "Someone"
	}

	steps := []notifyStep{
		{
			name: "dm-target",
			run: func(ctx context.Context) error {
				dm, err := rs.discord.CreateDM(ctx, target.DiscordID)
				if err != nil {
					return err
				}
				content := fmt.Sprintf("%s wants to squad up! Join your private chat: %s | Profile: %s",
					senderName, channelURL, profileURL)
				return rs.discord.CreateMessage(ctx, dm.ID, content)
			},
		},
		{
			name: "dm-sender",
			run: func(ctx context.Context) error {
				dm, err := rs.discord.CreateDM(ctx, sender.DiscordID)
				if err != nil {
					return err
				}
				return rs.discord.CreateMessage(ctx, dm.ID, "Your private chat is ready: "+channelURL)
			},
		},
		{
			name: "channel-welcome",
			run: func(ctx context.Context) error {
				return rs.discord.CreateMessage(ctx, channel.ID,
					"Welcome! Use this channel to coordinate your match. "+
						"If you didn't receive a DM, your DMs may be disabled. This channel is your shared space.")
			},
		},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			// Direct messages may be disabled by the recipient, expected.
			rs.logger.Errorf("request %s: notification step %s failed: %v", request.ID, step.name, err)
		}
	}

	return &SendResult{ChannelURL: channelURL}, nil
}

// channelName derives the deterministic channel name from the last 4
// characters of each party's Discord id. Collisions are acknowledged.
func channelName(fromDiscordID string, toDiscordID string) string {
	return fmt.Sprintf("%s-%s-%s", channelPrefix, last4(fromDiscordID), last4(toDiscordID))
}

func last4(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

// mapDiscordError translates a channel creation failure into the error taxonomy.
func mapDiscordError(err error) error {
	if errors.Is(err, discord.ErrNotConfigured) {
		return apperrors.Wrap(err, apperrors.CodeMisconfigured, messages.BotNotConfigured)
	}

	var apiErr *discord.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Wrap(err, apperrors.CodeUpstream, fmt.Sprintf(messages.UpstreamChannelMsg, apiErr.Body))
	}

	return apperrors.Wrap(err, apperrors.CodeUpstream, fmt.Sprintf(messages.UpstreamChannelMsg, err.Error()))
}
