package connection

type ReqFetchBoard struct {
	GameUuid string `json:"game_uuid"`
}
