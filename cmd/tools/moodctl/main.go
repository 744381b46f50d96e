package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/mood-companion/backend/internal/analysis/emotion"
	"github.com/zhouzirui/mood-companion/backend/internal/app"
	"github.com/zhouzirui/mood-companion/backend/internal/config"
	chatservice "github.com/zhouzirui/mood-companion/backend/internal/service/chat"
)

var localOnly bool

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:          "moodctl",
		Short:        "Classify messages and chat with the mood companion from a terminal",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&localOnly, "local", false, "skip the remote model and use keyword rules only")

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(trendCmd())
	rootCmd.AddCommand(chatCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadApp 与 API 服务共用同一套环境变量配置。
func loadApp(ctx context.Context) (*app.App, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] 无法加载 .env，改用系统环境变量: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if localOnly {
		cfg.AI.Provider = ""
	}
	return app.New(ctx, cfg), nil
}

func classifyCmd() *cobra.Command {
	var feature bool

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify the emotion of a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}

			result := a.Emotion.Classify(cmd.Context(), text)
			if feature {
				result.Intensity = emotion.Score(text, result.Category, emotion.PolicyFeature)
			}
			printResult(cmd.OutOrStdout(), result)
			fmt.Fprintf(cmd.OutOrStdout(), "Backend:   %s\n", a.Emotion.Backend())
			return nil
		},
	}

	cmd.Flags().BoolVar(&feature, "feature", false, "score intensity from punctuation and capitalisation")
	return cmd
}

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend [category...]",
		Short: "Compute the mood trend of a sequence of categories, oldest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := parseHistory(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), emotion.ComputeTrend(history))
			return nil
		},
	}
}

func parseHistory(args []string) ([]emotion.Result, error) {
	history := make([]emotion.Result, 0, len(args))
	for _, arg := range args {
		category, ok := emotion.ParseCategory(arg)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", arg)
		}
		history = append(history, emotion.Result{Category: category, Intensity: emotion.FixedIntensity(category)})
	}
	return history, nil
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation (/trend, /history, /reset, /quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), a.Chat, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runChat 逐行读取输入，每行作为一轮用户消息处理。
func runChat(ctx context.Context, svc *chatservice.Service, in io.Reader, out io.Writer) error {
	for _, turn := range svc.Transcript() {
		fmt.Fprintf(out, "%s: %s\n", turn.Sender, turn.Text)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/trend":
			fmt.Fprintf(out, "trend: %s\n", svc.CurrentTrend())
			continue
		case "/history":
			for _, r := range svc.EmotionHistory() {
				printResult(out, r)
			}
			continue
		case "/reset":
			session := svc.Reset()
			fmt.Fprintf(out, "new session %s\n", session.ID)
			continue
		}

		result, err := svc.ProcessUserMessage(ctx, line)
		if err != nil {
			return err
		}
		meta := result.Classification.Metadata()
		fmt.Fprintf(out, "[%s %s %d] %s\n", meta.Icon, meta.Label, result.Classification.Intensity, result.Reply)
		fmt.Fprintf(out, "trend: %s\n", result.Trend)
	}
}

func printResult(out io.Writer, r emotion.Result) {
	meta := r.Metadata()
	fmt.Fprintf(out, "Emotion:   %s %s\n", meta.Icon, meta.Label)
	fmt.Fprintf(out, "Intensity: %d\n", r.Intensity)
}
