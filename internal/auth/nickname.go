package auth

import (
	"fmt"
	"math/rand"
)

// Fallback nicknames for Kakao accounts that expose no profile name.
var (
	nicknameAdjectives = []string{
		"은은한", "묵직한", "달콤한", "싱그러운", "고소한",
		"스모키한", "향긋한", "부드러운", "짙은", "산뜻한",
	}
	nicknameNouns = []string{
		"셰리캐스크", "피트몬스터", "하이볼", "싱글몰트", "버번러버",
		"온더락", "니트파", "글렌캐런", "오크통", "마스터블렌더",
	}
)

// RandomNickname generates a whiskey-flavored display name.
func RandomNickname() string {
	adj := nicknameAdjectives[rand.Intn(len(nicknameAdjectives))]
	noun := nicknameNouns[rand.Intn(len(nicknameNouns))]
	return fmt.Sprintf("%s %s%02d", adj, noun, rand.Intn(100))
}
