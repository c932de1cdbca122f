package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/logger"
	"github.com/zionmelson/shredstream-tui/state"
	"github.com/zionmelson/shredstream-tui/stream"
	"github.com/zionmelson/shredstream-tui/ui"
)

var (
	watchProxyURL      string
	watchTickRateMs    uint64
	watchMetricsWindow uint64
	watchWallet        string
)

var watchCmd = cobra.Command{
	Use:   "watch",
	Short: "Connect to the proxy and monitor the shred stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogs("watch")
		logger.SetConsoleEnabled(false)

		return runWatch()
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchProxyURL, "proxy-url", "p", "", "websocket endpoint of the ShredStream proxy (default from config proxy.url)")
	watchCmd.Flags().Uint64VarP(&watchTickRateMs, "tick-rate", "t", uint64(config.DefaultTickRate/time.Millisecond), "UI refresh tick in milliseconds")
	watchCmd.Flags().Uint64VarP(&watchMetricsWindow, "metrics-window", "m", uint64(config.DefaultMetricsWindow/time.Second), "metrics window duration in seconds")
	watchCmd.Flags().StringVarP(&watchWallet, "wallet", "w", "", "(optional) wallet address to monitor")
	RootCmd.AddCommand(&watchCmd)
}

func runWatch() error {
	proxyURL := watchProxyURL
	if proxyURL == "" {
		proxyURL = viper.GetString("proxy.url")
	}
	if proxyURL == "" {
		proxyURL = "ws://127.0.0.1:50051"
	}

	st := state.New(proxyURL)
	st.LogInfo("ShredStream TUI starting...")
	st.LogInfo("Connecting to proxy at %s", proxyURL)

	if watchWallet != "" {
		wallet, err := solana.PublicKeyFromBase58(watchWallet)
		if err != nil {
			return fmt.Errorf("invalid wallet address %q: %w", watchWallet, err)
		}
		st.Wallet.SetWallet(wallet)
		st.LogInfo("Monitoring wallet %s", wallet)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := stream.NewClient(proxyURL, st)
	go client.Run(ctx)

	tick := time.Duration(watchTickRateMs) * time.Millisecond
	window := time.Duration(watchMetricsWindow) * time.Second

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.GlobalLogger.Info("Shutting down")
			return nil

		case msg := <-client.Messages():
			// Aggregate state is already authoritative; messages are a
			// liveness signal. Errors still land in the global log file.
			if msg.Kind == stream.KindError {
				logger.GlobalLogger.Error("Stream error", "err", msg.Err)
			}

		case <-ticker.C:
			if st.MetricsWindowSecs() >= window.Seconds() {
				st.ResetMetricsWindow()
			}
			fmt.Print("\033[2J\033[H" + ui.Render(st))
		}
	}
}
