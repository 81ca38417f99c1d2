package generator

import (
	"fmt"

	"svw.info/codebreaker/internal/domain"
)

// Briefing is the static explanatory text shown next to a cipher.
type Briefing struct {
	Description string
	Tips        string
	Guide       string
}

// DefaultLocale is the language the game shipped with.
const DefaultLocale = "ko"

type briefingTable [domain.Vigenere + 1]Briefing

var briefings = map[string]*briefingTable{
	"ko": {
		domain.Caesar: {
			Description: "알파벳을 일정한 칸수만큼 옆으로 밀어버린 암호입니다.",
			Tips:        "모든 글자가 똑같은 간격(예: 전부 +3칸)으로 밀려있습니다.",
			Guide:       "■ 해독법:\n1. 암호문의 첫 글자가 'D'이고, 정답이 'A'라고 추측한다면 간격은 +3입니다.\n2. 나머지 글자들도 똑같이 알파벳 순서에서 3칸씩 앞으로 당겨보세요.",
		},
		domain.Atbash: {
			Description: "알파벳 판을 반으로 접어 대칭시킨 '거울' 암호입니다.",
			Tips:        "A는 Z로, B는 Y로 바뀝니다. 알파벳 끝에서부터 거꾸로 세보세요.",
			Guide:       "■ 해독법:\n1. '분석 데이터'의 알파벳 표를 봅니다.\n2. A(00)는 Z(25)로, B(01)는 Y(24)로 바뀝니다. 인덱스 번호를 합쳐서 25가 되는 글자를 찾으세요.",
		},
		domain.A1Z26: {
			Description: "알파벳을 A=1, B=2 처럼 순서 숫자로 치환했습니다.",
			Tips:        "숫자가 몇 번째 알파벳인지 '분석 데이터' 표에서 찾아보세요.",
			Guide:       "■ 해독법:\n1. '19-16-25' 같은 숫자를 봅니다.\n2. 19번째는 S, 16번째는 P, 25번째는 Y입니다. 숫자를 하나씩 글자로 바꾸면 됩니다.",
		},
		domain.Keyword: {
			Description: "특정 단어를 암호표의 시작점으로 잡은 변칙 암호입니다.",
			Tips:        "키워드가 암호표 맨 앞에 오고, 나머지 글자들이 뒤를 따릅니다.",
			Guide:       "■ 해독법:\n1. 만약 키워드가 'AGENT'라면, 암호표는 A,G,E,N,T 다음 나머지 B,C,D,F... 순서가 됩니다.\n2. 이 커스텀 암호표를 알파벳 A-Z와 1:1로 매칭해 읽으세요.",
		},
		domain.Pigpen: {
			Description: "도형 격자와 점의 위치로 글자를 기호화했습니다.",
			Tips:        "기호의 테두리 모양과 점의 유무가 핵심 단서입니다.",
			Guide:       "■ 해독법:\n1. # 모양 칸은 A~I, 점이 찍힌 #은 J~R입니다.\n2. X 모양 칸은 S~V, 점이 찍힌 X는 W~Z입니다. 기호의 모양을 잘 대조하세요.",
		},
		domain.RailFence: {
			Description: "글자를 위아래 지그재그로 써서 순서를 섞었습니다.",
			Tips:        "암호문의 앞부분 절반과 뒷부분 절반을 번갈아 합치세요.",
			Guide:       "■ 해독법:\n1. 암호문이 'S E R P Y'라면, 앞의 두 글자(SE)는 윗줄, 뒤의 세 글자(RPY)는 아랫줄입니다.\n2. '윗줄 1번 - 아랫줄 1번 - 윗줄 2번 - 아랫줄 2번...' 순서로 지그재그로 읽어보세요.",
		},
		domain.Vigenere: {
			Description: "글자마다 서로 다른 칸수만큼 밀어내는 고난도 암호입니다.",
			Tips:        "반복되는 '비밀 키워드'를 찾아야만 해독할 수 있습니다.",
			Guide:       "■ 비제네르 암호의 원리:\n키워드가 'DOG'라면 글자마다 밀어내는 칸수가 변합니다.\n\n1. 첫 글자: 키워드 'D'는 4번째 글자이므로 원래 글자를 +3칸(D-A=3) 밀어냅니다.\n2. 둘째 글자: 키워드 'O'는 15번째이므로 원래 글자를 +14칸 밀어냅니다.\n3. 셋째 글자: 키워드 'G'만큼 밀어냅니다.\n4. 넷째 글자: 다시 'D'만큼 밀어냅니다. (D-O-G 순서 반복)\n\n※ 즉, 글자마다 서로 다른 카이사르 암호가 적용된 것과 같습니다.",
		},
	},
	"en": {
		domain.Caesar: {
			Description: "Every letter has been pushed a fixed number of places along the alphabet.",
			Tips:        "All letters moved by the same distance (for example +3 each).",
			Guide:       "■ How to crack it:\n1. If the first ciphertext letter is 'D' and you suspect the answer starts with 'A', the shift is +3.\n2. Pull every other letter back by the same 3 places.",
		},
		domain.Atbash: {
			Description: "The alphabet was folded in half: a mirror cipher.",
			Tips:        "A becomes Z, B becomes Y. Count backwards from the end of the alphabet.",
			Guide:       "■ How to crack it:\n1. Look at the alphabet index table.\n2. A(00) swaps with Z(25), B(01) with Y(24). Find the letter whose index adds up to 25.",
		},
		domain.A1Z26: {
			Description: "Letters were replaced by their position numbers, A=1, B=2 and so on.",
			Tips:        "Look up which letter of the alphabet each number is.",
			Guide:       "■ How to crack it:\n1. Take numbers such as '19-16-25'.\n2. The 19th letter is S, the 16th is P, the 25th is Y. Convert them one by one.",
		},
		domain.Keyword: {
			Description: "A secret word starts the substitution alphabet.",
			Tips:        "The keyword comes first in the cipher alphabet and the unused letters follow.",
			Guide:       "■ How to crack it:\n1. With keyword 'AGENT' the cipher alphabet reads A,G,E,N,T then B,C,D,F...\n2. Line that alphabet up against A-Z and read across.",
		},
		domain.Pigpen: {
			Description: "Letters were turned into symbols made of grid lines and dots.",
			Tips:        "The outline of each symbol and whether it carries a dot are the key clues.",
			Guide:       "■ How to crack it:\n1. Plain # cells are A-I, dotted # cells are J-R.\n2. Plain X cells are S-V, dotted X cells are W-Z. Match the shapes carefully.",
		},
		domain.RailFence: {
			Description: "The letters were written in a zigzag over two rails and read off rail by rail.",
			Tips:        "Interleave the first half of the ciphertext with the second half.",
			Guide:       "■ How to crack it:\n1. For ciphertext 'S E R P Y' the first three letters (SER) are the top rail and the last two (PY) the bottom rail.\n2. Read top 1, bottom 1, top 2, bottom 2 and so on.",
		},
		domain.Vigenere: {
			Description: "Each letter is shifted by a different amount taken from a repeating key.",
			Tips:        "You need to find the repeating secret keyword to read it.",
			Guide:       "■ How a Vigenère cipher works:\nWith keyword 'DOG' the shift changes from letter to letter.\n\n1. First letter: key 'D' is the 4th letter, so shift by +3 (D-A=3).\n2. Second letter: key 'O' is the 15th letter, so shift by +14.\n3. Third letter: shift by 'G'.\n4. Fourth letter: 'D' again (D-O-G repeats).\n\n※ It is a different Caesar cipher for every letter.",
		},
	},
}

func init() {
	for locale, table := range briefings {
		for _, t := range domain.AllCipherTypes() {
			b := table[t]
			if b.Description == "" || b.Tips == "" || b.Guide == "" {
				panic(fmt.Sprintf("generator: %s briefing missing for %s", locale, t))
			}
		}
	}
}

// SupportedLocale reports whether briefings exist for locale.
func SupportedLocale(locale string) bool {
	_, ok := briefings[locale]
	return ok
}

// Locales lists the supported briefing languages.
func Locales() []string {
	return []string{"en", "ko"}
}

// BriefingFor returns the text for t in locale, falling back to
// DefaultLocale for an unknown locale.
func BriefingFor(locale string, t domain.CipherType) Briefing {
	table, ok := briefings[locale]
	if !ok {
		table = briefings[DefaultLocale]
	}
	if !t.Valid() {
		return Briefing{}
	}
	return table[t]
}
