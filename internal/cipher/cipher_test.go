package cipher

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/codebreaker/internal/domain"
	"svw.info/codebreaker/internal/rng"
)

// fixed always returns v; (k+0.5)/n selects index k of an n-way draw.
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func pick(k, n int) fixed { return fixed((float64(k) + 0.5) / float64(n)) }

func TestEncryptReferenceVectors(t *testing.T) {
	cases := []struct {
		typ   domain.CipherType
		words map[string]string
		key   *domain.CipherKey
	}{
		{domain.Vigenere, map[string]string{"AGENT": "OXFVM", "WHISPER": "KYJAISI", "JAZZ": "XRAH"}, domain.WordKey("ORBIT")},
		{domain.Caesar, map[string]string{"AGENT": "BHFOU", "WHISPER": "XIJTQFS", "JAZZ": "KBAA"}, domain.ShiftKey(1)},
		{domain.Atbash, map[string]string{"AGENT": "ZTVMG", "WHISPER": "DSRHKVI", "JAZZ": "QZAA"}, nil},
		{domain.A1Z26, map[string]string{"AGENT": "01-07-05-14-20", "WHISPER": "23-08-09-19-16-05-18", "JAZZ": "10-01-26-26"}, nil},
		{domain.Keyword, map[string]string{"AGENT": "ZDALS", "WHISPER": "VFGQNAP", "JAZZ": "HZYY"}, domain.WordKey("ZEBRA")},
		{domain.Pigpen, map[string]string{"AGENT": "AGENT", "WHISPER": "WHISPER", "JAZZ": "JAZZ"}, nil},
		{domain.RailFence, map[string]string{"AGENT": "AETGN", "WHISPER": "WIPRHSE", "JAZZ": "JZAZ"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			for plain, want := range tc.words {
				// seed 7 opens with 0.0117..., the lowest index of every draw
				res, err := Encrypt(plain, tc.typ, rng.New(7))
				require.NoError(t, err)
				assert.Equal(t, want, res.Ciphertext, plain)
				assert.Equal(t, tc.key, res.Key, plain)
			}
		})
	}
}

func TestCaesarExampleScenario(t *testing.T) {
	r := rng.New(635)
	require.Equal(t, 0, rng.IntN(r, 30), "first draw selects AGENT from the dictionary")
	res, err := Encrypt("AGENT", domain.Caesar, r)
	require.NoError(t, err)
	assert.Equal(t, "DJHQW", res.Ciphertext)
	assert.Equal(t, domain.ShiftKey(3), res.Key)
}

func TestEncryptUppercasesInput(t *testing.T) {
	res, err := Encrypt("agent", domain.Atbash, fixed(0))
	require.NoError(t, err)
	assert.Equal(t, "ZTVMG", res.Ciphertext)
}

func TestEncryptUnknownCipher(t *testing.T) {
	_, err := Encrypt("AGENT", domain.CipherType(99), fixed(0))
	assert.ErrorIs(t, err, ErrUnknownCipher)
	_, err = Decrypt("AGENT", domain.CipherType(99), nil)
	assert.ErrorIs(t, err, ErrUnknownCipher)
}

func TestCaesarRoundTripAllShifts(t *testing.T) {
	for shift := 1; shift <= 25; shift++ {
		res, err := Encrypt("WHISPER", domain.Caesar, pick(shift-1, 25))
		require.NoError(t, err)
		require.Equal(t, domain.ShiftKey(shift), res.Key)
		plain, err := Decrypt(res.Ciphertext, domain.Caesar, res.Key)
		require.NoError(t, err)
		assert.Equal(t, "WHISPER", plain, "shift %d", shift)
	}
	_, err := Decrypt("XYZ", domain.Caesar, nil)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestAtbashInvolution(t *testing.T) {
	once := atbash(alphabet)
	assert.Equal(t, "ZYXWVUTSRQPONMLKJIHGFEDCBA", once)
	assert.Equal(t, alphabet, atbash(once))
}

func TestA1Z26RoundTrip(t *testing.T) {
	for _, w := range []string{"AGENT", "ZODIAC", "MYSTERY", "JAZZ"} {
		res, err := Encrypt(w, domain.A1Z26, fixed(0))
		require.NoError(t, err)
		for _, code := range strings.Split(res.Ciphertext, "-") {
			require.Len(t, code, 2)
		}
		plain, err := Decrypt(res.Ciphertext, domain.A1Z26, nil)
		require.NoError(t, err)
		assert.Equal(t, w, plain)
	}
}

func TestKeywordAlphabetIsPermutation(t *testing.T) {
	want := map[string]string{
		"ZEBRA":  "ZEBRACDFGHIJKLMNOPQSTUVWXY",
		"JAZZ":   "JAZBCDEFGHIKLMNOPQRSTUVWXY",
		"GHOST":  "GHOSTABCDEFIJKLMNPQRUVWXYZ",
		"SILVER": "SILVERABCDFGHJKMNOPQTUWXYZ",
		"VORTEX": "VORTEXABCDFGHIJKLMNPQSUWYZ",
	}
	for i, kw := range Keywords {
		sub := KeywordAlphabet(kw)
		assert.Equal(t, want[kw], sub)

		letters := strings.Split(sub, "")
		sort.Strings(letters)
		assert.Equal(t, alphabet, strings.Join(letters, ""), kw)

		res, err := Encrypt("WHISPER", domain.Keyword, pick(i, len(Keywords)))
		require.NoError(t, err)
		require.Equal(t, domain.WordKey(kw), res.Key)
		plain, err := Decrypt(res.Ciphertext, domain.Keyword, res.Key)
		require.NoError(t, err)
		assert.Equal(t, "WHISPER", plain, kw)
	}
}

func TestRailFenceRoundTrip(t *testing.T) {
	for _, w := range []string{"A", "AB", "AGENT", "SECRET", "WHISPER"} {
		res, err := Encrypt(w, domain.RailFence, fixed(0))
		require.NoError(t, err)
		plain, err := Decrypt(res.Ciphertext, domain.RailFence, nil)
		require.NoError(t, err)
		assert.Equal(t, w, plain)
	}
	assert.Equal(t, "", railFence(""))
}

func TestVigenereRoundTripAllKeys(t *testing.T) {
	for i, key := range VigenereKeys {
		res, err := Encrypt("PHOENIX", domain.Vigenere, pick(i, len(VigenereKeys)))
		require.NoError(t, err)
		require.Equal(t, domain.WordKey(key), res.Key)
		plain, err := Decrypt(res.Ciphertext, domain.Vigenere, res.Key)
		require.NoError(t, err)
		assert.Equal(t, "PHOENIX", plain, key)
	}
}

func TestNonLetterPassthrough(t *testing.T) {
	const in = "AB-C D1!"
	for _, typ := range []domain.CipherType{domain.Caesar, domain.Atbash, domain.Keyword, domain.Vigenere} {
		res, err := Encrypt(in, typ, fixed(0.3))
		require.NoError(t, err)
		out := []rune(res.Ciphertext)
		require.Len(t, out, len([]rune(in)), typ.String())
		for i, r := range in {
			if letterIndex(r) < 0 {
				assert.Equal(t, r, out[i], "%s keeps %q at %d", typ, r, i)
			} else {
				assert.GreaterOrEqual(t, letterIndex(out[i]), 0, "%s maps letters to letters", typ)
			}
		}
		plain, err := Decrypt(res.Ciphertext, typ, res.Key)
		require.NoError(t, err)
		assert.Equal(t, in, plain, typ.String())
	}

	// Rail fence moves characters but never alters them.
	res, err := Encrypt(in, domain.RailFence, fixed(0))
	require.NoError(t, err)
	got, want := []rune(res.Ciphertext), []rune(in)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	assert.Equal(t, want, got)

	res, err = Encrypt("AB C", domain.A1Z26, fixed(0))
	require.NoError(t, err)
	assert.Equal(t, "01-02- -03", res.Ciphertext)
}

func TestBoundaryLengths(t *testing.T) {
	for _, w := range []string{"JAZZ", "MYSTERY"} {
		for _, typ := range domain.AllCipherTypes() {
			res, err := Encrypt(w, typ, rng.New(20261014))
			require.NoError(t, err)
			if typ == domain.A1Z26 {
				assert.Len(t, strings.Split(res.Ciphertext, "-"), len(w))
			} else {
				assert.Len(t, res.Ciphertext, len(w), typ.String())
			}
			plain, err := Decrypt(res.Ciphertext, typ, res.Key)
			require.NoError(t, err)
			assert.Equal(t, w, plain, typ.String())
		}
	}
}

func TestRandomnessConsumption(t *testing.T) {
	draws := map[domain.CipherType]int{
		domain.Caesar: 1, domain.Keyword: 1, domain.Vigenere: 1,
		domain.Atbash: 0, domain.A1Z26: 0, domain.Pigpen: 0, domain.RailFence: 0,
	}
	for typ, n := range draws {
		c := &counting{src: rng.New(1)}
		_, err := Encrypt("AGENT", typ, c)
		require.NoError(t, err)
		assert.Equal(t, n, c.n, typ.String())
	}
}

type counting struct {
	src rng.Source
	n   int
}

func (c *counting) Float64() float64 {
	c.n++
	return c.src.Float64()
}
