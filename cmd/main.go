package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/pkg/logger"
	"agora/pkg/middleware"
	"agora/pkg/post"
	"agora/pkg/sessions"
	"agora/pkg/user"
	"agora/pkg/user/api"
)

type EnvConfig map[string]string

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	var cfg EnvConfig = readDotenv()

	mongoCtx, mongoCtxCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg["MONGODB_URI"]))
	if err != nil {
		log.Fatalln("main: can't connect to MongoDB,", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		log.Fatalln("main: unable to connect to MongoDB,", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(mongoCtx); err != nil {
			log.Fatalln("main: failed disconnecting from MongoDB, ", err)
		}
	}()

	dbName := cfg["MONGODB_DB"]
	if dbName == "" {
		dbName = "agora"
	}
	db := mongoClient.Database(dbName)

	redisPool := &redis.Pool{
		MaxIdle:     5,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(cfg["REDIS_ADDR"])
		},
	}
	defer redisPool.Close()

	postsRepo := post.NewPostRepo(db.Collection("posts"))
	usersRepo := user.NewUserRepo(db.Collection("users"))
	sessionsRepo := sessions.NewSessionRepo(db.Collection("sessions"))

	indexCtx, indexCtxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCtxCancel()
	ensureIndexes(indexCtx, postsRepo, usersRepo, sessionsRepo)

	postService := post.NewService(postsRepo)
	sessionManager := sessions.NewSessionManager(sessionsRepo, usersRepo, redisPool)

	postHandler := post.NewPostHandler(postService)
	userHandler := api.NewUserHandler(usersRepo, sessionManager)
	sessionHandler := sessions.NewSessionHandler(sessionManager)

	if os.Getenv("SEED_FAKE_DATA") == "1" {
		seed(context.Background(), usersRepo, postsRepo)
	}

	r := mux.NewRouter()

	// Posts. /posts/source routes go first: mux matches in
	// registration order and {post_id} would swallow "source".
	r.HandleFunc("/posts/source/exists", postHandler.SourceExists).Methods("GET")
	r.HandleFunc("/posts/source", postHandler.FindBySource).Methods("GET")
	r.HandleFunc("/posts", postHandler.List).Methods("GET")
	r.HandleFunc("/posts", postHandler.Create).Methods("POST")
	r.HandleFunc("/posts/{post_id}", postHandler.Get).Methods("GET")
	r.HandleFunc("/posts/{post_id}/like", postHandler.ToggleLike).Methods("POST")
	r.HandleFunc("/posts/{post_id}/comments", postHandler.AddComment).Methods("POST")
	r.HandleFunc("/posts/{post_id}/comments/{comment_id}/replies", postHandler.AddReply).Methods("POST")

	// Users
	r.HandleFunc("/users", userHandler.GetByEmail).Methods("GET").Queries("email", "{email}")
	r.HandleFunc("/users", userHandler.Create).Methods("POST")
	r.HandleFunc("/users/{user_id}", userHandler.Get).Methods("GET")
	r.HandleFunc("/users/{user_id}/sessions", userHandler.DeleteSessions).Methods("DELETE")

	// Sessions
	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST")
	r.HandleFunc("/sessions/validate", sessionHandler.Validate).Methods("POST")
	r.HandleFunc("/sessions/{token_hash}", sessionHandler.Delete).Methods("DELETE")

	logMiddleware := middleware.NewLoggingMiddleware(logger.Run(cfg["LOG_LEVEL"]))
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	addr := cfg["ADDR"]
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Serving at", addr)
	log.Fatalln(http.ListenAndServe(addr, r))
}

type indexEnsurer interface {
	EnsureIndexes(context.Context) error
}

func ensureIndexes(ctx context.Context, repos ...indexEnsurer) {
	for _, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalln("main: failed ensuring indexes,", err)
		}
	}
}

func readDotenv() EnvConfig {
	env, err := godotenv.Read()
	if err != nil {
		log.Fatal("failed reading .env file:", err)
	}
	return env
}
