package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/alexjohnson-dev/portfolio/backend/internal/config"
	"github.com/alexjohnson-dev/portfolio/backend/internal/handler"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/project"
	"github.com/alexjohnson-dev/portfolio/backend/internal/model/prompt"
	"github.com/alexjohnson-dev/portfolio/backend/internal/service/ai"
	chatservice "github.com/alexjohnson-dev/portfolio/backend/internal/service/chat"
	"github.com/alexjohnson-dev/portfolio/backend/internal/service/conversation"
	"github.com/alexjohnson-dev/portfolio/backend/internal/service/speech"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	promptStore := prompt.NewMemoryStore(prompt.Seed())
	projectStore := project.NewMemoryStore(project.Seed())

	turnStore := newTurnStore(ctx, cfg.Storage)

	// Initialize text generator
	var generator conversation.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("falling back to scripted responses - 请检查 Ark 模型相关环境变量")
			generator = ai.NewScriptedGenerator()
		} else {
			log.Println("AI service initialized successfully")
			generator = aiService
		}
	} else {
		log.Println("Ark 凭证未配置，使用脚本化回复")
		generator = ai.NewScriptedGenerator()
	}

	// Initialize speech synthesis
	var speaker conversation.Speaker
	if cfg.Speech.Enabled {
		speaker = speech.NewService(cfg.Speech)
		log.Println("Speech service initialized successfully")
	} else {
		log.Println("语音服务凭证未配置，跳过语音功能初始化")
	}

	conversationSvc := conversation.NewService(generator, speaker, turnStore, promptStore)

	router := handler.NewRouter(conversationSvc, promptStore, projectStore, cfg.Admin.Token)

	startServer(ctx, cfg.Server, router)
}

// newTurnStore selects Redis persistence when configured, in-memory otherwise.
func newTurnStore(ctx context.Context, cfg config.StorageConfig) chatservice.TurnStore {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR 未配置，会话历史仅保存在内存中")
		return chatservice.NewMemoryStore()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("warning: redis unreachable at %s, falling back to memory store: %v", cfg.RedisAddr, err)
		return chatservice.NewMemoryStore()
	}

	log.Printf("chat history persisted to redis at %s", cfg.RedisAddr)
	return chatservice.NewRedisStore(rdb)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
