package domain

import "time"

// Message はSlackメッセージ（チャンネル履歴の1エントリ）を表すドメインモデル
type Message struct {
	ID         string // Slackのタイムスタンプ（ts）
	Text       string
	UserID     string
	BotID      string
	AppID      string
	ChannelID  string
	Timestamp  time.Time
	SubType    string
	ReplyCount int
	Reactions  []Reaction
	ThreadTS   string // スレッドのタイムスタンプ（空文字列の場合は通常メッセージ）
}

// HasReactions はメッセージにリアクションがあるかどうかを返す
func (m *Message) HasReactions() bool {
	return len(m.Reactions) > 0
}

// TotalReactionCount はメッセージの総リアクション数を返す
func (m *Message) TotalReactionCount() int {
	total := 0
	for _, r := range m.Reactions {
		total += r.Count
	}
	return total
}

// IsThreadReply はこのメッセージがスレッドの返信かどうかを返す
func (m *Message) IsThreadReply() bool {
	return m.ThreadTS != "" && m.ThreadTS != m.ID
}

// IsThreadParent はこのメッセージがスレッドの親メッセージかどうかを返す
func (m *Message) IsThreadParent() bool {
	return m.ThreadTS != "" && m.ThreadTS == m.ID
}

// HasThread は返信を取得すべきスレッドを持つかどうかを返す
func (m *Message) HasThread() bool {
	return m.IsThreadParent() || (m.ReplyCount > 0 && !m.IsThreadReply())
}

// Actor はメッセージの投稿者を返す
// user が無い場合は bot_id、app_id の順に自動化アクターとして扱う
func (m *Message) Actor() Actor {
	switch {
	case m.UserID != "":
		return Actor{ID: m.UserID, Kind: ActorHuman}
	case m.BotID != "":
		return Actor{ID: m.BotID, Kind: ActorBot}
	case m.AppID != "":
		return Actor{ID: m.AppID, Kind: ActorApp}
	default:
		return Actor{ID: UnknownActorID, Kind: ActorBot}
	}
}
