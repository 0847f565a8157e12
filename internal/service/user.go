package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
	"soundspace/internal/view"
)

// UserService handles account registration, login and profile management.
type UserService struct {
	userRepo    repository.UserRepository
	pictureRepo repository.ProfilePictureRepository
	soundRepo   repository.SoundRepository
	albumRepo   repository.AlbumRepository
	fileStore   FileStore
	auth        *AuthService
	guard       *access.Guard
	assembler   *view.Assembler
}

func NewUserService(
	userRepo repository.UserRepository,
	pictureRepo repository.ProfilePictureRepository,
	soundRepo repository.SoundRepository,
	albumRepo repository.AlbumRepository,
	fileStore FileStore,
	auth *AuthService,
	guard *access.Guard,
	assembler *view.Assembler,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		pictureRepo: pictureRepo,
		soundRepo:   soundRepo,
		albumRepo:   albumRepo,
		fileStore:   fileStore,
		auth:        auth,
		guard:       guard,
		assembler:   assembler,
	}
}

// Register creates a new account and logs it in. Every new user also gets an
// empty profile picture row so later picture uploads are a plain update.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		PasswordHashed: string(hashed),
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Seed the picture row. Upsert keeps this race-free against a concurrent
	// first upload.
	picture, err := s.pictureRepo.Upsert(ctx, user.ID, nil, nil)
	if err != nil {
		log.Printf("[UserService] Failed to seed profile picture for user %d: %v", user.ID, err)
	} else {
		user.ProfilePicture = picture
	}

	token, err := s.auth.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	log.Printf("[UserService] Registered user %d (%s)", user.ID, user.Username)

	return &model.LoginResponse{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.auth.config.AccessTokenMaxAge,
	}, nil
}

// Login validates credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if picture, err := s.pictureRepo.GetByUserID(ctx, user.ID); err == nil {
		user.ProfilePicture = picture
	}

	token, err := s.auth.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.LoginResponse{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.auth.config.AccessTokenMaxAge,
	}, nil
}

// Get returns a user projection. kind selects between the minimal shape and
// the complete one with nested sounds, albums and playlists.
func (s *UserService) Get(ctx context.Context, userID int64, kind view.Kind) (*view.UserView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assembler.User(ctx, user, kind)
}

// List returns minimal projections of all users.
func (s *UserService) List(ctx context.Context) ([]view.UserView, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]view.UserView, 0, len(users))
	for i := range users {
		v, err := s.assembler.User(ctx, &users[i], view.Minimal)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Update changes account fields. Only the account holder or an administrator
// may edit; nil request fields are left unchanged.
func (s *UserService) Update(ctx context.Context, actor *access.Identity, userID int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindUser, access.OpUpdate, actor, user); err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes the account. Database rows cascade; stored files (profile
// picture, uploaded sounds, album covers) are released best-effort afterwards.
func (s *UserService) Delete(ctx context.Context, actor *access.Identity, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindUser, access.OpDelete, actor, user); err != nil {
		return err
	}

	var staleKeys []string
	if picture, err := s.pictureRepo.GetByUserID(ctx, userID); err == nil && picture.PictureKey != nil {
		staleKeys = append(staleKeys, *picture.PictureKey)
	}
	if sounds, err := s.soundRepo.ListByUser(ctx, userID); err == nil {
		for _, snd := range sounds {
			staleKeys = append(staleKeys, snd.FileKey)
		}
	}
	if albums, err := s.albumRepo.ListByUser(ctx, userID); err == nil {
		for _, album := range albums {
			if album.PictureKey != nil {
				staleKeys = append(staleKeys, *album.PictureKey)
			}
		}
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	for _, key := range staleKeys {
		if err := s.fileStore.Delete(ctx, key); err != nil {
			log.Printf("[UserService] Failed to delete stored object %s: %v", key, err)
		}
	}

	log.Printf("[UserService] Deleted user %d (%s)", user.ID, user.Username)
	return nil
}

// SetProfilePicture uploads a new picture and replaces the user's current
// one. The previous stored object is released best-effort.
func (s *UserService) SetProfilePicture(ctx context.Context, actor *access.Identity, userID int64, file multipart.File, header *multipart.FileHeader) (*model.ProfilePicture, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindUser, access.OpUpdate, actor, user); err != nil {
		return nil, err
	}

	var oldKey *string
	if current, err := s.pictureRepo.GetByUserID(ctx, userID); err == nil {
		oldKey = current.PictureKey
	}

	result, err := s.fileStore.StorePicture(ctx, file, header, model.ProfileFolder)
	if err != nil {
		return nil, err
	}

	picture, err := s.pictureRepo.Upsert(ctx, userID, &result.URL, &result.Key)
	if err != nil {
		// Row update failed, don't leak the freshly stored object
		if delErr := s.fileStore.Delete(ctx, result.Key); delErr != nil {
			log.Printf("[UserService] Failed to delete orphaned picture %s: %v", result.Key, delErr)
		}
		return nil, err
	}

	if oldKey != nil {
		if err := s.fileStore.Delete(ctx, *oldKey); err != nil {
			log.Printf("[UserService] Failed to delete old picture %s: %v", *oldKey, err)
		}
	}

	return picture, nil
}
