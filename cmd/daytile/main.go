package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/infrastructure/storage"
	"svw.info/daytile/internal/ports"
	"svw.info/daytile/internal/puzzle"
	"svw.info/daytile/internal/render"
	"svw.info/daytile/internal/solver"
	"svw.info/daytile/internal/sweep"
)

func main() {
	date := flag.String("date", "", "date to solve as YYYY-MM-DD (default today)")
	solverKind := flag.String("solver", "dlx", "solver to use: dlx|brute")
	all := flag.Bool("all", false, "enumerate all solutions and report the count")
	format := flag.String("format", "text", "output format: text|ppm")
	out := flag.String("o", "", "output file for ppm (default solutions/<date>.ppm)")
	saveDir := flag.String("save", "", "if set, persist the solution as JSON under this directory")
	sweepYear := flag.Int("sweep", 0, "solve every day of the given year and print a report")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
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
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "brute", "bruteforce":
		s = solver.NewBruteSolver()
	default:
		s = solver.NewDLXSolver()
	}

	ctx := context.Background()

	if *sweepYear != 0 {
		days, st, err := sweep.NewYearSweeper(s).Sweep(ctx, *sweepYear)
		if err != nil {
			logger.Error("sweep failed", "year", *sweepYear, "err", err)
			os.Exit(1)
		}
		unsolvable := 0
		for _, d := range days {
			if !d.Solvable {
				unsolvable++
				fmt.Printf("%s\tunsolvable\n", d.Date)
			}
		}
		fmt.Printf("%d days, %d unsolvable, %d nodes, %v\n",
			len(days), unsolvable, st.Nodes, st.Duration.Round(time.Millisecond))
		return
	}

	day := time.Now()
	if *date != "" {
		var err error
		day, err = time.Parse("2006-01-02", *date)
		if err != nil {
			logger.Error("invalid date", "date", *date, "err", err)
			os.Exit(1)
		}
	}
	pz, err := puzzle.ForDate(day)
	if err != nil {
		logger.Error("invalid puzzle date", "err", err)
		os.Exit(1)
	}

	var sol *domain.Solution
	if *all {
		sols, st, err := s.SolveAll(ctx, pz)
		if err != nil {
			logger.Error("solve failed", "err", err)
			os.Exit(1)
		}
		if len(sols) == 0 {
			fmt.Printf("%s: no solution\n", day.Format("2006-01-02"))
			os.Exit(1)
		}
		logger.Info("solved", "date", day.Format("2006-01-02"),
			"solutions", len(sols), "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
		fmt.Printf("%d solutions\n", len(sols))
		sol = &sols[0]
	} else {
		first, st, err := s.Solve(ctx, pz)
		if err != nil {
			if errors.Is(err, domain.ErrUnsolvable) {
				fmt.Printf("%s: no solution\n", day.Format("2006-01-02"))
				os.Exit(1)
			}
			logger.Error("solve failed", "err", err)
			os.Exit(1)
		}
		logger.Info("solved", "date", day.Format("2006-01-02"),
			"nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
		sol = first
	}

	switch strings.ToLower(*format) {
	case "ppm":
		path := *out
		if path == "" {
			path = filepath.Join("solutions", day.Format("2006-01-02")+".ppm")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			logger.Error("mkdir failed", "err", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, render.PPM(pz, sol), 0o644); err != nil {
			logger.Error("write failed", "path", path, "err", err)
			os.Exit(1)
		}
		fmt.Println(path)
	default:
		fmt.Print(render.Text(pz, sol))
	}

	if *saveDir != "" {
		st := storage.NewFS(*saveDir)
		rec := &domain.SolvedDay{
			ID:        day.Format("2006-01-02"),
			Solution:  *sol,
			CreatedAt: time.Now().UnixNano(),
		}
		if err := st.Save(ctx, rec); err != nil {
			logger.Error("save failed", "err", err)
			os.Exit(1)
		}
		logger.Info("saved", "id", rec.ID, "dir", *saveDir)
	}
}
