package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	auth "Conduit/internal/auth"
	copperloss "Conduit/internal/calc/copperloss"
	coverage "Conduit/internal/calc/coverage"
	drainage "Conduit/internal/calc/drainage"
	lighting "Conduit/internal/calc/lighting"
	batch "Conduit/internal/calc/premium/batch"
	importer "Conduit/internal/calc/premium/importer"
	projector "Conduit/internal/calc/projector"
	rainwater "Conduit/internal/calc/rainwater"
	report "Conduit/internal/calc/report"
	reverb "Conduit/internal/calc/reverb"
	spl "Conduit/internal/calc/spl"
	voltdrop "Conduit/internal/calc/voltdrop"
	profile "Conduit/internal/profile"
	repo "Conduit/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB, log *zap.Logger) {
	userRepo := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo, Log: log}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/upload-avatar", profileH.UploadAvatar).Methods("POST")
	secureApi.HandleFunc("/history", profileH.SaveCalculation).Methods("POST")
	secureApi.HandleFunc("/history", profileH.ListCalculations).Methods("GET")

	copperlossH := &copperloss.Handler{}
	voltdropH := &voltdrop.Handler{}
	lightingH := &lighting.Handler{}
	splH := &spl.Handler{}
	coverageH := &coverage.Handler{}
	reverbH := &reverb.Handler{}
	projectorH := &projector.Handler{}
	drainageH := &drainage.Handler{}
	rainwaterH := &rainwater.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/tools/copperloss/calc", copperlossH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/voltdrop/calc", voltdropH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/lighting/calc", lightingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/spl/calc", splH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/coverage/calc", coverageH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/reverb/calc", reverbH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/projector/calc", projectorH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/drainage/calc", drainageH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/rainwater/calc", rainwaterH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/import/schedule", importerH.Schedule).Methods("POST")

	secureApi.HandleFunc("/docs/list", func(w http.ResponseWriter, r *http.Request) {
		type Doc struct {
			Name string `json:"name"`
			Path string `json:"path"`
		}
		var docs []Doc
		fs.WalkDir(os.DirFS("./docs"), ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			docs = append(docs, Doc{Name: d.Name(), Path: path})
			return nil
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(docs)
	}).Methods("GET")

	mux.Handle("/metrics", promhttp.Handler())

	mux.PathPrefix("/uploads/").
		Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir("./static/uploads/"))))

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.Handle("/profile/{id:[0-9]+}", authEnv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/profile/index.html")
	})))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mux.PathPrefix("/docs/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/docs", http.FileServer(http.Dir("./docs")))))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log, _ := zap.NewProduction()
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded", zap.Error(err))
	}

	db := auth.InitDB(log)
	defer db.Close()
	router := mux.NewRouter()
	HandleList(router, db, log)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	log.Info("starting server", zap.String("addr", addr))

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")

	wg.Wait()
}
