package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"retroBoard/configs"
	"retroBoard/internal/handlers"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx                context.Context
	configs            *configs.Config
	router             *gin.Engine
	restHandler        *handlers.RestHandler
	socketBoardHandler *handlers.SocketBoardHandler
}

func NewHttpServer(
	ctx context.Context,
	cfg *configs.Config,
	restHandler *handlers.RestHandler,
	socketBoardHandler *handlers.SocketBoardHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:                ctx,
			configs:            cfg,
			restHandler:        restHandler,
			socketBoardHandler: socketBoardHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

// Router exposes the configured engine for tests.
func (hs *HttpServer) Router() *gin.Engine {
	return hs.router
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
	hs.router.Use(hs.corsMiddleware())
}

func (hs *HttpServer) corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", hs.configs.Cors.AllowOrigin)
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

func (hs *HttpServer) setupRestfulRoutes() {
	api := hs.router.Group("/api")
	{
		api.GET("/boards", hs.restHandler.GetBoards)
		api.GET("/boards/:id", hs.restHandler.GetBoard)
		api.POST("/boards", hs.restHandler.CreateBoard)
		api.DELETE("/boards/:id", hs.restHandler.DeleteBoard)
	}

	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/board", hs.socketBoardHandler.HandleSocketBoardRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	server := &http.Server{
		Addr:    ":" + hs.configs.Server.Port,
		Handler: hs.router,
	}

	go func() {
		log.Printf("RetroBoard server running on port %v", hs.configs.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all WebSocket connections
	hs.socketBoardHandler.CloseAllConnections()

	log.Println("Server exiting")
}
