package catalog

// Builtin returns the catalog compiled into the app. Lesson IDs follow
// the historical "<courseID>_l<n>" convention so identifiers stay
// stable across releases.
func Builtin() *Static {
	return NewStatic([]Course{
		{
			ID:    "greetings",
			Title: "Greetings & Politeness",
			Lessons: []Lesson{
				{
					ID:    "greetings_l1",
					Title: "Hello and Goodbye",
					Cards: []Card{
						{Thai: "สวัสดี", Roman: "sawatdii", English: "hello"},
						{Thai: "ลาก่อน", Roman: "laa kɔ̀ɔn", English: "goodbye"},
						{Thai: "แล้วเจอกัน", Roman: "lɛ́ɛo jəə gan", English: "see you later"},
						{Thai: "ครับ/ค่ะ", Roman: "khráp/khâ", English: "polite particles", Lifehack: true},
					},
				},
				{
					ID:    "greetings_l2",
					Title: "How Are You?",
					Cards: []Card{
						{Thai: "สบายดีไหม", Roman: "sabaai dii mái", English: "how are you?"},
						{Thai: "สบายดี", Roman: "sabaai dii", English: "I'm fine"},
						{Thai: "ขอบคุณ", Roman: "khɔ̀ɔp khun", English: "thank you"},
						{Thai: "ไม่เป็นไร", Roman: "mâi pen rai", English: "never mind / you're welcome"},
					},
				},
				{
					ID:    "greetings_l3",
					Title: "Introducing Yourself",
					Cards: []Card{
						{Thai: "ผมชื่อ...", Roman: "phǒm chʉ̂ʉ...", English: "my name is... (m)"},
						{Thai: "ฉันชื่อ...", Roman: "chán chʉ̂ʉ...", English: "my name is... (f)"},
						{Thai: "ยินดีที่ได้รู้จัก", Roman: "yin dii thîi dâi rúu jàk", English: "nice to meet you"},
						{Thai: "คุณชื่ออะไร", Roman: "khun chʉ̂ʉ arai", English: "what is your name?"},
						{Thai: "ไหว้", Roman: "wâi", English: "the wai gesture", Lifehack: true},
					},
				},
			},
		},
		{
			ID:    "numbers",
			Title: "Numbers & Counting",
			Lessons: []Lesson{
				{
					ID:    "numbers_l1",
					Title: "One to Ten",
					Cards: []Card{
						{Thai: "หนึ่ง", Roman: "nʉ̀ng", English: "one"},
						{Thai: "สอง", Roman: "sɔ̌ɔng", English: "two"},
						{Thai: "สาม", Roman: "sǎam", English: "three"},
						{Thai: "สี่", Roman: "sìi", English: "four"},
						{Thai: "ห้า", Roman: "hâa", English: "five"},
						{Thai: "หก", Roman: "hòk", English: "six"},
						{Thai: "เจ็ด", Roman: "jèt", English: "seven"},
						{Thai: "แปด", Roman: "pɛ̀ɛt", English: "eight"},
						{Thai: "เก้า", Roman: "kâao", English: "nine"},
						{Thai: "สิบ", Roman: "sìp", English: "ten"},
					},
				},
				{
					ID:    "numbers_l2",
					Title: "Tens and Hundreds",
					Cards: []Card{
						{Thai: "ยี่สิบ", Roman: "yîi sìp", English: "twenty"},
						{Thai: "สามสิบ", Roman: "sǎam sìp", English: "thirty"},
						{Thai: "ร้อย", Roman: "rɔ́ɔi", English: "hundred"},
						{Thai: "พัน", Roman: "phan", English: "thousand"},
						{Thai: "เอ็ด", Roman: "èt", English: "one in 21, 31, ...", Lifehack: true},
					},
				},
			},
		},
		{
			ID:    "food",
			Title: "Food & Ordering",
			Lessons: []Lesson{
				{
					ID:    "food_l1",
					Title: "At the Street Stall",
					Cards: []Card{
						{Thai: "ข้าว", Roman: "khâao", English: "rice"},
						{Thai: "ผัดไทย", Roman: "phàt thai", English: "pad thai"},
						{Thai: "ต้มยำกุ้ง", Roman: "tôm yam kûng", English: "tom yum with shrimp"},
						{Thai: "อร่อย", Roman: "arɔ̀i", English: "delicious"},
					},
				},
				{
					ID:    "food_l2",
					Title: "Ordering and Paying",
					Cards: []Card{
						{Thai: "ขอ...หน่อย", Roman: "khɔ̌ɔ ... nɔ̀i", English: "may I have ..."},
						{Thai: "เท่าไหร่", Roman: "thâo rài", English: "how much?"},
						{Thai: "เช็คบิล", Roman: "chék bin", English: "the bill, please"},
						{Thai: "ไม่เผ็ด", Roman: "mâi phèt", English: "not spicy"},
						{Thai: "เผ็ดนิดหน่อย", Roman: "phèt nít nɔ̀i", English: "a little spicy", Lifehack: true},
					},
				},
			},
		},
	})
}
