package domain

// Reaction はSlackのリアクション（絵文字）を表すドメインモデル
type Reaction struct {
	Name  string // 絵文字名（例: "thumbsup", "smile"）
	Count int    // リアクション数
}

// Label は集計キーとして使う ":name:" 形式の文字列を返す
func (r Reaction) Label() string {
	return ":" + r.Name + ":"
}
