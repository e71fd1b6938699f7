// Package main provides localization for the framestrip CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Condense a video into a single strip image of evenly spaced frames": "動画を等間隔サンプルフレームの帯画像に凝縮します",

		// Flags
		"the number of frames in the visualization":                           "可視化に使うフレーム数",
		"interval between frames, in seconds (used when --nframes is absent)": "フレーム間の間隔（秒、--nframes がない場合に使用）",
		"the height of each frame, in pixels (default: auto)":                 "各フレームの高さ（ピクセル、既定: 自動）",
		"the output width of each frame, in pixels (default: auto)":           "各フレームの出力幅（ピクセル、既定: 自動）",
		"direction to concatenate frames, horizontal or vertical":             "フレームを連結する方向（horizontal または vertical）",
		"detect and trim any hard matting (letterboxing or pillarboxing)":     "ハードマット（レターボックス/ピラーボックス）を検出してトリム",
		"mute console outputs":             "コンソール出力を抑制",
		"YAML file with default option values": "オプション既定値のYAMLファイル",
		"write a Markdown summary of the run to this path": "実行サマリーをMarkdownでこのパスに書き出す",
		"log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"show this help message and exit":      "このヘルプを表示して終了",

		// Errors
		"a source video and a destination image path are required":        "入力動画と出力画像のパスが必要です",
		"you must provide either an --(n)frames or --(i)nterval argument": "--(n)frames か --(i)nterval のどちらかを指定してください",
		"Interrupted, shutting down...":                                   "中断されました。シャットダウン中...",
		"Summary written to %s":                                           "サマリーを %s に書き出しました",
	})
}
