package caption

import (
	"fmt"
	"strings"
)

// DefaultKeywords are the accepted names of the subject; at least one must
// appear in every caption.
var DefaultKeywords = []string{"कृष्ण", "श्रीकृष्ण", "कान्हा", "गोविंद"}

// DefaultGlyphs are the decorative symbols the validator may append.
var DefaultGlyphs = []string{"❤️", "🌸", "🦚", "🕊️", "✨", "💙", "🌿", "🌙"}

// StyleExamples set the tone for the provider prompt and double as the
// fallback pool when generation keeps failing. They are seeded into the
// dedupe history so the provider never hands one back verbatim.
var StyleExamples = []string{
	"जब सब छूट जाए, तब भी श्रीकृष्ण साथ रहते हैं। ❤️",
	"जिसने कृष्ण को पाया, उसने सब कुछ पा लिया। 🌸",
	"कृष्ण पर छोड़ दो, वह तुम्हें संभाल लेंगे। 💙",
	"जहाँ भरोसा कृष्ण पर हो, वहाँ डर कभी टिकता नहीं। ✨",
	"कृष्ण का नाम ही हर समस्या का समाधान है। 🦚",
	"जो हुआ अच्छा हुआ, जो हो रहा है कृष्ण की इच्छा से हो रहा है। 🌿",
	"कृष्ण की शरण में गए तो फिर किसी सहारे की ज़रूरत नहीं। 🕊️",
	"हर टूटे दिल की दवा सिर्फ एक — श्रीकृष्ण। ❤️",
	"कृष्ण ने संभाल लिया, अब मुझे किसी बात का डर नहीं। 🌙",
	"कृष्ण चुप रहते हैं, लेकिन कभी गलत नहीं करते। 🕊️",
}

// BuildPrompt assembles the fixed style/constraint prompt sent on every
// provider attempt.
func BuildPrompt(glyphs []string) string {
	if len(glyphs) == 0 {
		glyphs = DefaultGlyphs
	}

	var b strings.Builder
	b.WriteString(`आप एक Instagram Reels कंटेंट राइटर हैं।
आपका काम सिर्फ एक लाइन लिखना है — छोटी, गहरी, पॉज़िटिव, और पूरी तरह भगवान श्रीकृष्ण पर केंद्रित।

सख्त नियम:
- भाषा: केवल हिंदी (देवनागरी में लिखो, अंग्रेज़ी शब्द नहीं)
- लंबाई: 8 से 16 शब्द
- टोन: शांत, भरोसा, surrender, care, सुरक्षा, प्रेम
- स्टाइल: simple, direct, relatable (लोग तुरंत connect करें)
- कंटेंट: भगवान श्रीकृष्ण को center में रखो (नाम ज़रूर आए — कृष्ण / श्रीकृष्ण / कान्हा / गोविंद आदि)
- आउटपुट: सिर्फ एक लाइन, कोई extra टेक्स्ट, कोई explanation नहीं
- प्यारे इमोजी include कर सकते हो जैसे: `)
	b.WriteString(strings.Join(glyphs, ", "))
	b.WriteString(`
- लाइन motivational या healing लगे, over dramatic नहीं

स्टाइल के उदाहरण (इन जैसी vibe, पर एकदम नई लाइन):
`)
	for i, ex := range StyleExamples[:5] {
		fmt.Fprintf(&b, "%d. %q\n", i+1, ex)
	}
	b.WriteString(`
अब इन्हें ध्यान से पढ़कर, इन्हीं की तरह स्टाइल रखते हुए,
एक नई, यूनिक, गहरी, छोटी हिंदी लाइन लिखो।`)
	return b.String()
}
