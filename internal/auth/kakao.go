package auth

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	kakaoAuthorizeURL = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL     = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL  = "https://kapi.kakao.com/v2/user/me"

	// userIDPrefix namespaces Kakao account IDs in the user table.
	userIDPrefix = "kakao_"
)

// KakaoConfig holds the OAuth application credentials.
type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// KakaoClient performs the Kakao OAuth code exchange and profile
// lookup.
type KakaoClient struct {
	client *resty.Client
	cfg    KakaoConfig
}

// NewKakaoClient creates a Kakao OAuth client.
func NewKakaoClient(cfg KakaoConfig) *KakaoClient {
	client := resty.New()
	client.SetTimeout(15 * time.Second)
	return &KakaoClient{client: client, cfg: cfg}
}

// Enabled reports whether OAuth credentials are configured.
func (c *KakaoClient) Enabled() bool {
	return c.cfg.ClientID != "" && c.cfg.RedirectURL != ""
}

// AuthorizeURL builds the login redirect target.
func (c *KakaoClient) AuthorizeURL() string {
	params := url.Values{}
	params.Set("client_id", c.cfg.ClientID)
	params.Set("redirect_uri", c.cfg.RedirectURL)
	params.Set("response_type", "code")
	return kakaoAuthorizeURL + "?" + params.Encode()
}

type kakaoTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type kakaoUserResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
}

// Profile is the identity resolved from a completed OAuth flow.
type Profile struct {
	UserID       string
	Nickname     string
	Email        string
	ProfileImage string
}

// ExchangeCode trades an authorization code for an access token.
func (c *KakaoClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := map[string]string{
		"grant_type":   "authorization_code",
		"client_id":    c.cfg.ClientID,
		"redirect_uri": c.cfg.RedirectURL,
		"code":         code,
	}
	if c.cfg.ClientSecret != "" {
		form["client_secret"] = c.cfg.ClientSecret
	}

	var token kakaoTokenResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&token).
		Post(kakaoTokenURL)
	if err != nil {
		return "", fmt.Errorf("kakao token request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("kakao token exchange returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("kakao token exchange returned no access token")
	}
	return token.AccessToken, nil
}

// FetchProfile resolves the Kakao account behind an access token.
func (c *KakaoClient) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	var user kakaoUserResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(&user).
		Get(kakaoUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("kakao user info request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("kakao user info returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("kakao user info returned no account id")
	}

	nickname := user.Properties.Nickname
	if nickname == "" {
		nickname = user.KakaoAccount.Profile.Nickname
	}
	if nickname == "" {
		nickname = RandomNickname()
	}

	return &Profile{
		UserID:       userIDPrefix + strconv.FormatInt(user.ID, 10),
		Nickname:     nickname,
		Email:        user.KakaoAccount.Email,
		ProfileImage: user.Properties.ProfileImage,
	}, nil
}
