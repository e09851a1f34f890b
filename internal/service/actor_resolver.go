package service

import (
	"context"

	"github.com/paulera/team-stats/internal/domain"
	"github.com/rs/zerolog/log"
)

// ActorResolver は投稿者IDを "表示用の識別子:ID" 形式のラベルに変換する
// ユーザーはメールアドレス、ボットは名前に解決し、結果は1回の実行の間キャッシュする
// 解決に失敗した場合は "ID:ID" にフォールバックし、処理は継続する
type ActorResolver struct {
	userRepo domain.UserRepository
	botRepo  domain.BotRepository
	cache    map[string]string
}

// NewActorResolver は空のキャッシュを持つActorResolverを作成する
func NewActorResolver(userRepo domain.UserRepository, botRepo domain.BotRepository) *ActorResolver {
	return &ActorResolver{
		userRepo: userRepo,
		botRepo:  botRepo,
		cache:    make(map[string]string),
	}
}

// Label は投稿者のラベルを返す
func (r *ActorResolver) Label(ctx context.Context, actor domain.Actor) string {
	if label, ok := r.cache[actor.ID]; ok {
		return label
	}

	identity := r.resolve(ctx, actor)
	if identity == "" {
		identity = actor.ID
	}

	label := identity + ":" + actor.ID
	r.cache[actor.ID] = label
	return label
}

// resolve は投稿者の表示用の識別子を取得する（取得できない場合は空文字列）
func (r *ActorResolver) resolve(ctx context.Context, actor domain.Actor) string {
	switch {
	case actor.Kind == domain.ActorHuman:
		user, err := r.userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			log.Warn().Err(err).Str("userID", actor.ID).Msg("Could not retrieve user info")
			return ""
		}
		return user.Email
	case actor.Kind == domain.ActorBot && actor.ID != domain.UnknownActorID:
		bot, err := r.botRepo.FindByID(ctx, actor.ID)
		if err != nil {
			log.Warn().Err(err).Str("botID", actor.ID).Msg("Could not retrieve bot info")
			return ""
		}
		return bot.Name
	default:
		// アプリIDや不明な投稿者には参照APIがない
		return ""
	}
}
