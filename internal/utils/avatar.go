package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const defaultAvatarURL = "https://bulletin.example.com/static/images/defaultavatar.jpg"

// AvatarURL derives a gravatar URL from the user's email.
// Pure string formatting: md5 of the lowercased address plus
// default-image and size parameters.
func AvatarURL(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	params := url.Values{}
	params.Set("d", defaultAvatarURL)
	params.Set("s", fmt.Sprint(size))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?%s", hex.EncodeToString(sum[:]), params.Encode())
}
