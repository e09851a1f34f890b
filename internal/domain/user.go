package domain

// UnknownActorID は投稿者を特定できないメッセージに使うID
const UnknownActorID = "unknown"

// ActorKind は投稿者の種別
type ActorKind int

const (
	ActorHuman ActorKind = iota
	ActorBot
	ActorApp
)

func (k ActorKind) String() string {
	switch k {
	case ActorHuman:
		return "human"
	case ActorBot:
		return "bot"
	case ActorApp:
		return "app"
	default:
		return "unknown"
	}
}

// Actor はメッセージの投稿者（ユーザーまたはボット・ワークフロー）を表す
type Actor struct {
	ID   string
	Kind ActorKind
}

// IsAutomated はボットやアプリによる投稿かどうかを返す
func (a Actor) IsAutomated() bool {
	return a.Kind != ActorHuman
}

// User はSlackユーザーを表すドメインモデル
type User struct {
	ID    string
	Name  string
	Email string
}

// Bot はSlackのボットを表すドメインモデル
type Bot struct {
	ID    string
	Name  string
	AppID string
}
