package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soundspace/internal/access"
	"soundspace/internal/config"
	"soundspace/internal/database"
	"soundspace/internal/handler"
	"soundspace/internal/queue"
	"soundspace/internal/redis"
	"soundspace/internal/repository"
	"soundspace/internal/service"
	"soundspace/internal/view"
	"soundspace/internal/worker"
)

// Run wires the application together and serves HTTP until interrupted.
func Run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()

	if err := redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pictureRepo := repository.NewProfilePictureRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	soundRepo := repository.NewSoundRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	styleRepo := repository.NewStyleRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	soundLikeRepo := repository.NewSoundLikeRepository(db)
	playlistLikeRepo := repository.NewPlaylistLikeRepository(db)
	soundCommentRepo := repository.NewSoundCommentRepository(db)
	playlistCommentRepo := repository.NewPlaylistCommentRepository(db)
	userFollowRepo := repository.NewUserFollowRepository(db)
	playlistFollowRepo := repository.NewPlaylistFollowRepository(db)

	guard := access.NewGuard()
	assembler := view.NewAssembler(
		soundRepo, albumRepo, playlistRepo,
		soundLikeRepo, playlistLikeRepo,
		soundCommentRepo, playlistCommentRepo,
		userFollowRepo, playlistFollowRepo,
	)

	mediaService, err := service.NewMediaService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create media service: %w", err)
	}

	publisher := queue.NewPublisher(redisClient.Client)
	consumer := queue.NewConsumer(redisClient.Client)

	// Services
	authService := service.NewAuthService(cfg)
	notificationService := service.NewNotificationService(subRepo, service.NewExpoPushClient())
	userService := service.NewUserService(userRepo, pictureRepo, soundRepo, albumRepo, mediaService, authService, guard, assembler)
	soundService := service.NewSoundService(soundRepo, styleRepo, mediaService, guard, assembler, publisher)
	albumService := service.NewAlbumService(albumRepo, mediaService, guard, assembler)
	artistService := service.NewArtistService(artistRepo, guard)
	styleService := service.NewStyleService(styleRepo, guard)
	playlistService := service.NewPlaylistService(playlistRepo, soundRepo, guard, assembler)
	followService := service.NewFollowService(userFollowRepo, playlistFollowRepo, userRepo, playlistRepo, notificationService)
	likeService := service.NewLikeService(soundLikeRepo, playlistLikeRepo, soundRepo, playlistRepo, userRepo, notificationService)
	soundCommentService := service.NewSoundCommentService(soundCommentRepo, soundRepo, userRepo, guard, notificationService)
	playlistCommentService := service.NewPlaylistCommentService(playlistCommentRepo, playlistRepo, userRepo, guard, notificationService)

	// Worker pool for upload fan-out
	workerHandler := worker.NewHandler(userFollowRepo, userRepo, notificationService)
	manager := worker.NewManager(consumer, workerHandler, worker.ManagerConfig{
		WorkerCount: cfg.WorkerCount,
	})
	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	defer manager.Stop()

	router := NewRouter(RouterConfig{
		AuthHandler:            handler.NewAuthHandler(userService),
		UserHandler:            handler.NewUserHandler(userService),
		SoundHandler:           handler.NewSoundHandler(soundService),
		AlbumHandler:           handler.NewAlbumHandler(albumService),
		ArtistHandler:          handler.NewArtistHandler(artistService),
		StyleHandler:           handler.NewStyleHandler(styleService),
		PlaylistHandler:        handler.NewPlaylistHandler(playlistService),
		FollowHandler:          handler.NewFollowHandler(followService),
		LikeHandler:            handler.NewLikeHandler(likeService),
		SoundCommentHandler:    handler.NewCommentHandler(soundCommentService),
		PlaylistCommentHandler: handler.NewCommentHandler(playlistCommentService),
		DeviceHandler:          handler.NewDeviceHandler(notificationService),
		TokenParser:            authService,
	})

	server := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("Received %v, shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
