package usecase

import (
	"net/url"
	"strings"
)

// ResolveIdentity は自由入力から企業名とWebサイトを導出します。
//
// 入力に "http" または "." が含まれる場合はURLとして解釈し（スキームがなければ https:// を補う）、
// ホスト名から先頭の "www." を除いたものをwebsite、最初の "." より前をcompanyNameとします。
// URLとして解釈できない場合やどちらの目印もない場合は、入力をそのまま両方に使います。
func ResolveIdentity(input string) (companyName, website string) {
	if !strings.Contains(strings.ToLower(input), "http") && !strings.Contains(input, ".") {
		return input, input
	}

	u, err := url.Parse("https://" + authority(strings.TrimSpace(input)))
	if err != nil {
		return input, input
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return input, input
	}

	companyName, _, _ = strings.Cut(host, ".")
	return companyName, host
}

// authority はスキームとパス以降を除いた "host[:port]" 部分を返します。
// パスやクエリの不正なエスケープでホストの解釈が失敗しないよう、ホスト部分だけを解析に渡します。
func authority(s string) string {
	lower := strings.ToLower(s)
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(lower, scheme) {
			s = s[len(scheme):]
			break
		}
	}
	if i := strings.IndexAny(s, "/?#\\"); i >= 0 {
		s = s[:i]
	}
	return s
}
