package nlp

// stopwords are generic, sentiment, or grammatical terms that say
// nothing about how a whiskey tastes. Ported unchanged from the
// curation the wordclouds were tuned against.
var stopwords = map[string]struct{}{
	// general expressions
	"느낌": {}, "향": {}, "맛": {}, "노트": {}, "스타일": {}, "계열": {}, "타입": {}, "이미지": {}, "캐릭터": {},
	"밸런스": {}, "구성": {}, "전반": {}, "전체": {}, "기본": {}, "일반적": {}, "평범": {}, "무난": {},
	"바탕": {}, "하프": {}, "고인": {}, "피니시": {}, "숙성": {}, "기분": {}, "사이": {}, "마무리": {},
	"도수": {}, "코리아": {}, "위스키": {}, "아드벡": {},
	// degree adverbs
	"조금": {}, "약간": {}, "매우": {}, "너무": {}, "꽤": {}, "상당히": {}, "살짝": {},
	"강한": {}, "약한": {}, "진한": {}, "연한": {}, "가벼운": {}, "묵직한": {},
	// judgement terms
	"좋음": {}, "별로": {}, "괜찮": {}, "싫음": {}, "애매": {}, "실망": {}, "만족": {}, "불호": {},
	"호불호": {}, "취향": {}, "비추": {}, "추천": {},
	// commerce terms
	"가성비": {}, "가격": {}, "비쌈": {}, "저렴": {}, "구매": {}, "재구매": {}, "선물": {},
	"데일리": {}, "입문": {}, "초보": {}, "고급": {}, "한정": {}, "에디션": {},
	// time and frequency
	"처음": {}, "마지막": {}, "이번": {}, "예전": {}, "요즘": {}, "항상": {}, "가끔": {}, "자주": {},
	// subjective phrasing
	"기대": {}, "생각": {}, "느껴짐": {}, "같음": {},
	// particles and endings the tokenizer sometimes surfaces
	"의": {}, "을": {}, "를": {}, "이": {}, "가": {}, "은": {}, "는": {}, "에": {}, "에서": {}, "로": {}, "으로": {},
	"하다": {}, "되다": {}, "있다": {}, "없다": {}, "같다": {},
	// later additions
	"올라오": {}, "기반": {}, "비하": {}, "누르": {}, "느끼": {},
}

// IsStopword reports whether word is excluded from all frequency output.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
