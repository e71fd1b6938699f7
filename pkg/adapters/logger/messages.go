package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Visualizing %q - %d by %d, from %d frames": "%q を可視化中 - %d x %d、%d フレームから",
		"Visualization saved to %s":                 "可視化画像を %s に保存しました",
		"Trimming enabled, checking matting...":     "トリミング有効、マット判定中...",

		// Matte classification
		"No matting detected":                                       "マットは検出されませんでした",
		"Letterboxing detected, cropping %d px from top and bottom": "レターボックスを検出、上下 %d px をクロップします",
		"Pillarboxing detected, trimming %d px from the sides":      "ピラーボックスを検出、左右 %d px をトリムします",
		"Multiple matting detected - cropping (%d, %d) to (%d, %d)": "複数のマットを検出 - (%d, %d) から (%d, %d) にクロップします",

		// Matte stage (debug)
		"Probing %d frames for matting":                 "%d フレームをマット判定のためにプローブ中",
		"Detected %s, content bounds (%d, %d) to (%d, %d)": "%s を検出、コンテンツ境界 (%d, %d) - (%d, %d)",

		// Composite stage (debug)
		"Sampling %d frames with %d workers": "%d フレームを %d ワーカーでサンプリング中",
		"Strip assembled: %dx%d":             "ストリップ組み立て完了: %dx%d",
	})
}
