package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const pickupCodeLength = 8

// 受け取りコード生成。テストで差し替えられるようにしておく。
type PickupCodeGenerator interface {
	Generate(consumerID int64, offerID int64, qty int64, now time.Time) string
}

// md5(消費者ID + オファーID + ナノ秒 + 数量) の先頭8桁を大文字で。
// 一意性自体はDBのユニーク制約が保証する。
type HashPickupCodeGenerator struct{}

func (g *HashPickupCodeGenerator) Generate(consumerID int64, offerID int64, qty int64, now time.Time) string {
	seed := fmt.Sprintf("%d%d%d%d", consumerID, offerID, now.UnixNano(), qty)
	sum := md5.Sum([]byte(seed))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:pickupCodeLength])
}

// 照合は大文字に正規化してから行う
func NormalizePickupCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
