package entity

// DetectedLogo は画像から検出されたロゴを表します。
type DetectedLogo struct {
	Name       string  `json:"name"`       // 検出された企業名
	Confidence float32 `json:"confidence"` // 信頼度スコア（0.0 ~ 1.0）
}

// LogoResearch は検出したロゴと、その企業の調査結果の組です。
type LogoResearch struct {
	Logo    DetectedLogo    `json:"logo"`
	Profile *CompanyProfile `json:"profile"`
}
