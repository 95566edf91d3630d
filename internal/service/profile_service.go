package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
	"github.com/fjordlearn/fjordlearn-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ErrStreamLocked means the profile's teacher has pinned the stream.
var ErrStreamLocked = errors.New("stream change not allowed for this profile")

// ProfileService handles learner profile reads and stream switching.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	log         zerolog.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo *repository.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		log:         log.With().Str("component", "profile_service").Logger(),
	}
}

// Me resolves the profile payload for an email. An empty email yields the
// anonymous defaults without touching the database; a known or new email
// is upserted with bokmaal/A1 defaults.
func (s *ProfileService) Me(ctx context.Context, email string) (*model.ProfileResponse, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return &model.ProfileResponse{
			IsAuthenticated:   false,
			Stream:            model.StreamBokmaal,
			Level:             model.LevelA1,
			AllowStreamChange: true,
		}, nil
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, email)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResponse{
		IsAuthenticated:   true,
		Username:          profile.Email,
		DisplayName:       displayName(profile.Email),
		Stream:            profile.Stream,
		Level:             profile.Level,
		AllowStreamChange: profile.AllowStreamChange,
	}, nil
}

// ChangeStream switches the profile's stream and level. Profiles with
// stream changes disabled reject the switch.
func (s *ProfileService) ChangeStream(ctx context.Context, req *model.ChangeStreamRequest) (*model.ProfileResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		email = NormalizeEmail(req.StudentEmail)
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, email)
	if err != nil {
		return nil, err
	}
	if !profile.AllowStreamChange {
		return nil, ErrStreamLocked
	}

	stream := profile.Stream
	if req.Stream != "" {
		stream = req.Stream
	}
	level := profile.Level
	if req.Level != "" {
		level = req.Level
	}

	if err := s.profileRepo.UpdateStreamLevel(ctx, email, stream, level); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("stream", string(stream)).Str("level", string(level)).
		Msg("Profile stream updated")

	return &model.ProfileResponse{
		IsAuthenticated:   true,
		Username:          profile.Email,
		DisplayName:       displayName(profile.Email),
		Stream:            stream,
		Level:             level,
		AllowStreamChange: profile.AllowStreamChange,
	}, nil
}

// displayName derives a readable name from the local part of an email.
func displayName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
