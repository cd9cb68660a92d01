package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Áo Sơ Mi Nữ", "ao-so-mi-nu"},
		{"Quần Jean Đen", "quan-jean-den"},
		{"Điện thoại  --  iPhone 15", "dien-thoai-iphone-15"},
		{"  Giày   Thể Thao!!!", "giay-the-thao"},
		{"simple", "simple"},
		{"Already-Slugged-Name", "already-slugged-name"},
		{"100% Cotton", "100-cotton"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Make(tc.in), "input %q", tc.in)
	}
}

func TestMakeCharset(t *testing.T) {
	inputs := []string{
		"Tủ lạnh Samsung 300L", "Nồi cơm điện", "Máy giặt LG (mới 99%)",
		"Bàn phím cơ — RGB", "Ổ cứng SSD 1TB", "Đồng hồ nữ",
	}
	for _, in := range inputs {
		got := Make(in)
		require.NotEmpty(t, got)
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			require.True(t, valid, "slug %q has invalid rune %q", got, r)
		}
		require.False(t, strings.HasPrefix(got, "-"), "slug %q has leading hyphen", got)
		require.False(t, strings.HasSuffix(got, "-"), "slug %q has trailing hyphen", got)
		require.NotContains(t, got, "--")
	}
}
