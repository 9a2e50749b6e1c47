// Package entity はemailフィーチャーのドメインモデルを定義します。
package entity

// TestSubjectPrefix はテスト送信時に件名へ付与される接頭辞です。
const TestSubjectPrefix = "[TEST] "

// Message は送信するメール1通を表します。
type Message struct {
	To      []string // 宛先（1件以上）
	From    string   // 送信元（空ならデフォルトの送信元を使用）
	Subject string
	HTML    string
	Text    string // 任意のプレーンテキスト本文
	ReplyTo string // 任意
}

// Receipt is the provider's acknowledgement of an accepted message.
type Receipt struct {
	ID string `json:"id"`
}

// SendOutcome は一括送信における1通ごとの結果です。
type SendOutcome struct {
	Receipt *Receipt
	Err     error
}

// Succeeded reports whether the message was accepted by the provider.
func (o SendOutcome) Succeeded() bool {
	return o.Err == nil
}

// BatchResult は一括送信の集計結果です。Resultsは入力と同じ順序です。
type BatchResult struct {
	Total      int
	Successful int
	Failed     int
	Results    []SendOutcome
}
