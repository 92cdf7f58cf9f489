package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"lottorecommender/config"
	"lottorecommender/logger"
	"lottorecommender/scheduler"
	"lottorecommender/tasks"
)

type rootOptions struct {
	configPath string
	source     string
	seed       uint64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lotto-recommender",
		Short:        "동행복권 로또 6/45 번호 추천 프로그램",
		Long:         "역대 당첨번호의 출현 빈도를 분석해 낮은 빈도 번호 위주로 10개 조합을 추천합니다.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()

			return runOnce(cmd.Context(), cmd, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "설정 파일 경로 (기본: config.yaml)")
	flags.StringVar(&opts.source, "source", "", "데이터 소스: json 또는 html")
	flags.Uint64Var(&opts.seed, "seed", 0, "난수 시드 (0이면 무작위)")

	cmd.AddCommand(newServiceCommand(opts), newDrawCommand(opts))
	return cmd
}

func newServiceCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "service",
		Short: "스케줄러 모드 (시작 시 1회 + 매주 추천)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()

			return runScheduler(cmd, cfg)
		},
	}
}

func newDrawCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "draw <round>",
		Short: "특정 회차의 당첨번호 조회",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			round, err := strconv.Atoi(args[0])
			if err != nil || round < 1 {
				return fmt.Errorf("회차는 1 이상의 숫자여야 합니다: %q", args[0])
			}

			cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()

			source, err := tasks.NewSource(cfg)
			if err != nil {
				return err
			}
			return tasks.ShowDraw(cmd.Context(), source, round, cmd.OutOrStdout())
		},
	}
}

// setup은 설정을 로드하고 플래그를 반영한 뒤 로거를 초기화합니다
func setup(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("❌ 설정 로드 실패: %w", err)
	}

	if cmd.Flags().Changed("source") {
		cfg.API.Source = opts.source
	}
	if cmd.Flags().Changed("seed") {
		cfg.Recommend.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("❌ 설정 오류: %w", err)
	}

	if err := logger.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return config.Config{}, fmt.Errorf("로그 초기화 실패: %w", err)
	}

	logger.Println("╔════════════════════════════════════════╗")
	logger.Println("║     로또 6/45 번호 추천 프로그램 시작     ║")
	logger.Println("╚════════════════════════════════════════╝")
	cfg.Print()

	return cfg, nil
}

func runOnce(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	source, err := tasks.NewSource(cfg)
	if err != nil {
		return err
	}

	bot := tasks.NewBot(cfg)
	tasks.Recommend(ctx, cfg, source, bot, cmd.OutOrStdout())
	return nil
}

// runScheduler는 스케줄러를 실행합니다
func runScheduler(cmd *cobra.Command, cfg config.Config) error {
	logger.Println("🔄 스케줄러 모드 시작")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 시작 시 즉시 1회 실행
	logger.Println("    시작 시 즉시 번호 추천 실행")
	if err := runOnce(ctx, cmd, cfg); err != nil {
		return err
	}

	sched := scheduler.New()
	if err := sched.AddFunc(cfg.Schedule.Cron, func() {
		if err := runOnce(ctx, cmd, cfg); err != nil {
			logger.Error().Err(err).Msg("❌ 예약 추천 실패")
		}
	}); err != nil {
		return fmt.Errorf("❌ 번호 추천 스케줄 등록 실패: %w", err)
	}

	sched.Start()

	logger.Info().
		Str("cron", cfg.Schedule.Cron).
		Time("next", sched.Next()).
		Msg("✅ 스케줄러 시작 완료 (종료하려면 Ctrl+C)")

	<-ctx.Done()

	logger.Println("⚠️  종료 신호를 받았습니다. 스케줄러를 중지합니다...")
	sched.Stop()

	logger.Println("✅ 프로그램 종료")
	return nil
}
