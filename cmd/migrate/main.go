package main

import (
	"context"
	"log/slog"
	"os"

	"plateful/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrations ディレクトリの未適用マイグレーションを適用する
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		slog.Error("マイグレーションの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーションが完了しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
}
