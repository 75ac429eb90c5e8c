package sessions

import "time"

type Session struct {
	Id        string    `bson:"id" json:"id"`
	TokenHash string    `bson:"tokenHash" json:"tokenHash"`
	UserId    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}
