package bootstrap

import "github.com/guildworks/guildshop/internal/pkg/database"

type ShopConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
}
