package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/daytile/internal/adapters/http"
	"svw.info/daytile/internal/hint"
	"svw.info/daytile/internal/infrastructure/storage"
	"svw.info/daytile/internal/ports"
	"svw.info/daytile/internal/solver"
	"svw.info/daytile/internal/sweep"
	"svw.info/daytile/internal/usecase"
	"svw.info/daytile/internal/validator"
	"svw.info/daytile/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "dlx", "solver to use: dlx|brute")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	// Choose solver: DLX by default, brute force as fallback via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "brute", "bruteforce":
		s = solver.NewBruteSolver()
	default:
		s = solver.NewDLXSolver()
	}

	// Wire providers → use cases → HTTP adapter
	v := validator.New()
	hin := hint.NewOnePiece(s)
	sw := sweep.NewYearSweeper(s)
	st := storage.NewFS(*persist)
	uc := usecase.NewService(s, v, hin, sw, st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := map[string]any{"Today": time.Now().Format("2006-01-02")}
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", data); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
