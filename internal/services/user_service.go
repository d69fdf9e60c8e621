package services

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/events"
	"github.com/sponsorlink/backend/internal/models"
	"github.com/sponsorlink/backend/internal/repositories"
)

type UserService struct {
	userRepo  *repositories.UserRepo
	auditRepo *repositories.AuditRepo
	publisher events.Publisher
	cfg       *config.Config
	log       *zap.Logger
}

func NewUserService(
	userRepo *repositories.UserRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     string

	// Sponsor profile
	Industry *string
	Budget   *int64

	// Influencer profile
	Category *string
	Niche    *string
	Reach    *int64
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if !models.IsValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}
	if in.Username == "" || in.Name == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, name and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if taken, err := s.userRepo.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	if taken, err := s.userRepo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: email already exists", ErrConflict)
	}

	hash, err := auth.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	// Profile fields only apply to the matching role.
	switch in.Role {
	case models.RoleSponsor:
		u.Industry = in.Industry
		u.Budget = in.Budget
	case models.RoleInfluencer:
		u.Category = in.Category
		u.Niche = in.Niche
		u.Reach = in.Reach
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &u.ID,
		ActorRole:   u.Role,
		Action:      "user_registered",
		EntityType:  "user",
		EntityID:    &u.ID,
	})
	return u, nil
}

// Authenticate verifies credentials and returns the user, or
// ErrUnauthenticated without distinguishing which part was wrong.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return u, nil
}

// ListInfluencers returns the influencer pool, optionally narrowed by a
// case-insensitive substring match on name, category or niche.
func (s *UserService) ListInfluencers(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	role := models.RoleInfluencer
	f := repositories.UserFilter{Role: &role, Limit: limit, Offset: offset}
	if search != "" {
		f.Search = &search
	}
	return s.userRepo.List(ctx, f)
}

// GetInfluencer returns an influencer profile; other roles' profiles are not
// exposed through the pool.
func (s *UserService) GetInfluencer(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if u.Role != models.RoleInfluencer {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *UserService) ListAll(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, repositories.UserFilter{Limit: limit, Offset: offset})
}

// Delete removes a user. Their campaigns and targeted ad requests follow via
// the FK cascade rules.
func (s *UserService) Delete(ctx context.Context, actor auth.Identity, id uuid.UUID) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actor.UserID,
		ActorRole:   actor.Role,
		Action:      "user_deleted",
		EntityType:  "user",
		EntityID:    &id,
		Meta:        map[string]any{"deleted_role": u.Role},
	})
	_ = s.publisher.Publish(ctx, "events:user", events.Event{
		Type:    events.EventUserDeleted,
		Payload: map[string]any{"user_id": id.String(), "role": u.Role},
	})
	return nil
}
