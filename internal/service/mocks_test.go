package service

import (
	"context"
	"mime/multipart"

	"soundspace/internal/model"
	"soundspace/internal/queue"
	"soundspace/internal/view"
)

// newTestAssembler builds an assembler over fresh mocks, with the sound
// repository injectable since most projection tests drive it.
func newTestAssembler(sounds *mockSoundRepository) *view.Assembler {
	return view.NewAssembler(
		sounds,
		&mockAlbumRepository{},
		&mockPlaylistRepository{},
		&mockLikeRepository{}, &mockLikeRepository{},
		&mockCommentRepository{}, &mockCommentRepository{},
		&mockFollowRepository{}, &mockFollowRepository{},
	)
}

// Function-field mocks for the repository interfaces. Each test overrides
// only the calls it cares about; everything else returns not-found defaults.

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	listFn             func(ctx context.Context) ([]model.User, error)
	updateFn           func(ctx context.Context, user *model.User) error
	deleteFn           func(ctx context.Context, id int64) error

	createCalls int
	deleteCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockPictureRepository struct {
	getByUserIDFn func(ctx context.Context, userID int64) (*model.ProfilePicture, error)
	upsertFn      func(ctx context.Context, userID int64, pictureURL, pictureKey *string) (*model.ProfilePicture, error)

	upsertCalls int
}

func (m *mockPictureRepository) GetByUserID(ctx context.Context, userID int64) (*model.ProfilePicture, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockPictureRepository) Upsert(ctx context.Context, userID int64, pictureURL, pictureKey *string) (*model.ProfilePicture, error) {
	m.upsertCalls++
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, pictureURL, pictureKey)
	}
	return &model.ProfilePicture{ID: 1, UserID: userID, PictureURL: pictureURL, PictureKey: pictureKey}, nil
}

type mockSoundRepository struct {
	createFn         func(ctx context.Context, sound *model.Sound) error
	getByIDFn        func(ctx context.Context, id int64) (*model.Sound, error)
	listFn           func(ctx context.Context) ([]model.Sound, error)
	listByUserFn     func(ctx context.Context, userID int64) ([]model.Sound, error)
	listByAlbumFn    func(ctx context.Context, albumID int64) ([]model.Sound, error)
	listByPlaylistFn func(ctx context.Context, playlistID int64) ([]model.Sound, error)
	updateFn         func(ctx context.Context, sound *model.Sound) error
	deleteFn         func(ctx context.Context, id int64) error
	countByAlbumFn   func(ctx context.Context, albumID int64) (int, error)
	countByUserFn    func(ctx context.Context, userID int64) (int, error)

	deleteCalls int
}

func (m *mockSoundRepository) Create(ctx context.Context, sound *model.Sound) error {
	if m.createFn != nil {
		return m.createFn(ctx, sound)
	}
	sound.ID = 1
	return nil
}

func (m *mockSoundRepository) GetByID(ctx context.Context, id int64) (*model.Sound, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrSoundNotFound
}

func (m *mockSoundRepository) List(ctx context.Context) ([]model.Sound, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockSoundRepository) ListByUser(ctx context.Context, userID int64) ([]model.Sound, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSoundRepository) ListByAlbum(ctx context.Context, albumID int64) ([]model.Sound, error) {
	if m.listByAlbumFn != nil {
		return m.listByAlbumFn(ctx, albumID)
	}
	return nil, nil
}

func (m *mockSoundRepository) ListByPlaylist(ctx context.Context, playlistID int64) ([]model.Sound, error) {
	if m.listByPlaylistFn != nil {
		return m.listByPlaylistFn(ctx, playlistID)
	}
	return nil, nil
}

func (m *mockSoundRepository) Update(ctx context.Context, sound *model.Sound) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, sound)
	}
	return nil
}

func (m *mockSoundRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSoundRepository) CountByAlbum(ctx context.Context, albumID int64) (int, error) {
	if m.countByAlbumFn != nil {
		return m.countByAlbumFn(ctx, albumID)
	}
	return 0, nil
}

func (m *mockSoundRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID)
	}
	return 0, nil
}

type mockAlbumRepository struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.Album, error)
	listByUserFn func(ctx context.Context, userID int64) ([]model.Album, error)
}

func (m *mockAlbumRepository) Create(ctx context.Context, album *model.Album) error {
	album.ID = 1
	return nil
}

func (m *mockAlbumRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrAlbumNotFound
}

func (m *mockAlbumRepository) List(ctx context.Context) ([]model.Album, error) {
	return nil, nil
}

func (m *mockAlbumRepository) ListByUser(ctx context.Context, userID int64) ([]model.Album, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAlbumRepository) Update(ctx context.Context, album *model.Album) error {
	return nil
}

func (m *mockAlbumRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockStyleRepository struct {
	getByIDFn func(ctx context.Context, id int64) (*model.MusicStyle, error)
}

func (m *mockStyleRepository) Create(ctx context.Context, style *model.MusicStyle) error {
	style.ID = 1
	return nil
}

func (m *mockStyleRepository) GetByID(ctx context.Context, id int64) (*model.MusicStyle, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.MusicStyle{ID: id, Name: "rock"}, nil
}

func (m *mockStyleRepository) List(ctx context.Context) ([]model.MusicStyle, error) {
	return nil, nil
}

func (m *mockStyleRepository) Update(ctx context.Context, style *model.MusicStyle) error {
	return nil
}

func (m *mockStyleRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockPlaylistRepository struct {
	getByIDFn     func(ctx context.Context, id int64) (*model.Playlist, error)
	addSoundFn    func(ctx context.Context, playlistID, soundID int64) error
	removeSoundFn func(ctx context.Context, playlistID, soundID int64) error
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	playlist.ID = 1
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) List(ctx context.Context) ([]model.Playlist, error) {
	return nil, nil
}

func (m *mockPlaylistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Playlist, error) {
	return nil, nil
}

func (m *mockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	return nil
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *mockPlaylistRepository) AddSound(ctx context.Context, playlistID, soundID int64) error {
	if m.addSoundFn != nil {
		return m.addSoundFn(ctx, playlistID, soundID)
	}
	return nil
}

func (m *mockPlaylistRepository) RemoveSound(ctx context.Context, playlistID, soundID int64) error {
	if m.removeSoundFn != nil {
		return m.removeSoundFn(ctx, playlistID, soundID)
	}
	return nil
}

func (m *mockPlaylistRepository) CountSounds(ctx context.Context, playlistID int64) (int, error) {
	return 0, nil
}

type mockFollowRepository struct {
	createFn      func(ctx context.Context, followerID, targetID int64) (bool, error)
	deleteFn      func(ctx context.Context, followerID, targetID int64) error
	existsFn      func(ctx context.Context, followerID, targetID int64) (bool, error)
	followerIDsFn func(ctx context.Context, targetID int64) ([]int64, error)

	createCalls int
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, targetID int64) (bool, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, followerID, targetID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, targetID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, targetID)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, targetID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, targetID)
	}
	return false, nil
}

func (m *mockFollowRepository) FollowerIDs(ctx context.Context, targetID int64) ([]int64, error) {
	if m.followerIDsFn != nil {
		return m.followerIDsFn(ctx, targetID)
	}
	return nil, nil
}

func (m *mockFollowRepository) CountFollowers(ctx context.Context, targetID int64) (int, error) {
	return 0, nil
}

type mockLikeRepository struct {
	createFn        func(ctx context.Context, targetID, userID int64) (bool, error)
	deleteFn        func(ctx context.Context, targetID, userID int64) error
	existsFn        func(ctx context.Context, targetID, userID int64) (bool, error)
	countByTargetFn func(ctx context.Context, targetID int64) (int, error)
}

func (m *mockLikeRepository) Create(ctx context.Context, targetID, userID int64) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, targetID, userID)
	}
	return true, nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, targetID, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, targetID, userID)
	}
	return nil
}

func (m *mockLikeRepository) Exists(ctx context.Context, targetID, userID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, targetID, userID)
	}
	return false, nil
}

func (m *mockLikeRepository) CountByTarget(ctx context.Context, targetID int64) (int, error) {
	if m.countByTargetFn != nil {
		return m.countByTargetFn(ctx, targetID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	createFn        func(ctx context.Context, targetID, userID int64, message string) (*model.Comment, error)
	getByIDFn       func(ctx context.Context, commentID int64) (*model.Comment, error)
	listByTargetFn  func(ctx context.Context, targetID int64) ([]model.Comment, error)
	updateFn        func(ctx context.Context, commentID int64, message string) (*model.Comment, error)
	deleteFn        func(ctx context.Context, commentID int64) error
	countByTargetFn func(ctx context.Context, targetID int64) (int, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, targetID, userID int64, message string) (*model.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, targetID, userID, message)
	}
	return &model.Comment{ID: 1, TargetID: targetID, UserID: userID, Message: message}, nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, commentID)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) ListByTarget(ctx context.Context, targetID int64) ([]model.Comment, error) {
	if m.listByTargetFn != nil {
		return m.listByTargetFn(ctx, targetID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, commentID int64, message string) (*model.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, commentID, message)
	}
	return &model.Comment{ID: commentID, Message: message}, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) CountByTarget(ctx context.Context, targetID int64) (int, error) {
	if m.countByTargetFn != nil {
		return m.countByTargetFn(ctx, targetID)
	}
	return 0, nil
}

// mockFileStore records stored and deleted keys.
type mockFileStore struct {
	storePictureFn func(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (*model.UploadResult, error)
	storeSoundFn   func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error)
	deleteFn       func(ctx context.Context, key string) error

	deletedKeys []string
}

func (m *mockFileStore) StorePicture(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (*model.UploadResult, error) {
	if m.storePictureFn != nil {
		return m.storePictureFn(ctx, file, header, folder)
	}
	return &model.UploadResult{URL: "https://cdn.example.com/" + folder + "/pic.jpg", Key: folder + "/pic.jpg"}, nil
}

func (m *mockFileStore) StoreSound(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error) {
	if m.storeSoundFn != nil {
		return m.storeSoundFn(ctx, file, header)
	}
	return &model.UploadResult{URL: "https://cdn.example.com/sounds/track.mp3", Key: "sounds/track.mp3"}, nil
}

func (m *mockFileStore) Delete(ctx context.Context, key string) error {
	m.deletedKeys = append(m.deletedKeys, key)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

// mockNotifier records notifications synchronously.
type mockNotifier struct {
	notifications []sentNotification
}

type sentNotification struct {
	UserID int64
	Title  string
	Body   string
	Route  string
}

func (m *mockNotifier) Notify(ctx context.Context, userID int64, title, body, route string) {
	m.notifications = append(m.notifications, sentNotification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Route:  route,
	})
}

// mockPublisher records published events.
type mockPublisher struct {
	publishFn func(ctx context.Context, stream string, event queue.NotificationEvent) (string, error)
	published []publishedEvent
}

type publishedEvent struct {
	Stream string
	Event  queue.NotificationEvent
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.NotificationEvent) (string, error) {
	m.published = append(m.published, publishedEvent{Stream: stream, Event: event})
	if m.publishFn != nil {
		return m.publishFn(ctx, stream, event)
	}
	return "1-0", nil
}
