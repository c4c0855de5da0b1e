package palette

// builtinSpec is a colour set as stored in source: hex strings without '#'.
type builtinSpec struct {
	name       string
	weight     float64
	dark       bool
	background string
	colors     []string
}

// builtinSpecs lists the stock colour sets in index order. Weights bias
// seed-based selection; dark sets switch glyphs to GN and grain to grey.
var builtinSpecs = []builtinSpec{
	{"#0", 2, false, "faf5e6", []string{"7daafa", "ff6464", "82c882", "f5dc91", "505050"}},
	{"#1", 2, false, "f0ebe6", []string{"fff0b4", "fa8273", "5a6eaf", "4baf96", "644b32"}},
	{"#2", 1, false, "f5dceb", []string{"fafafa", "fff59b", "fa7878", "5a64c8", "46463c"}},
	{"#3", 1, false, "ff6446", []string{"ffffff", "ffffc8", "ffaad2", "ffa078", "a0c896", "643214"}},
	{"#4", 0.5, false, "aadcaa", []string{"3c9b5f", "2d7350", "463c32", "ebf5e6", "faff91"}},
	{"#5", 0.5, false, "cddcd7", []string{"647891", "e6ebe1", "f5aa0f", "4b4b4b", "a08773"}},
	{"#6", 1, false, "ebe6e6", []string{"6e7db9", "555596", "50506e", "282d3c"}},
	{"#7", 1, false, "ff4646", []string{"ffe1e1", "ffafaf", "ff8282", "ff5f5f", "ff2323"}},
	{"#8", 1, false, "f0ebdc", []string{"2d91cd", "f09187", "aa6eaf", "73b4e1", "eb697d", "f5d273"}},
	{"#9", 1, false, "e1d7c3", []string{"55412d", "af4646", "789b6e", "f0ebe1", "e6b45a"}},
	{"#10 (Itonk)", 1, false, "c8bebe", []string{"9b8c7d", "55787d", "7d5055", "91a5aa", "f54b4b"}},
	{"#11 (Gora)", 1, false, "f5737d", []string{"b4b9d7", "ebaf64", "c3d7a0", "7d82d7", "cdfaaf"}},
	{"#12 (Gora)", 1, false, "7d96c3", []string{"f5b94b", "f5737d", "8cbec8", "b9e1c8", "6e50d7", "c8e17d"}},
	{"#13", 1, false, "e6e6f0", []string{"aaafcd", "555555", "050f32", "143282", "ff5f69", "4bb4ff"}},
	{"#14", 1, false, "fff5e1", []string{"ff554b", "ff8c00", "ff6400", "ff4b96", "dc4664", "ffeb14", "ffdc14"}},
	{"#15", 1, false, "9bd2b9", []string{"d7b4d7", "b9e1dc", "fae182", "f5aa91", "f5b4be"}},
	{"#16", 1, true, "323232", []string{"ff3c3c", "ff3c3c", "ff3c3c", "ff3c3c", "ff3c3c", "ff3c3c", "ff3c3c", "ff3c3c", "fafafa"}},
	{"#17", 1, true, "28324b", []string{"fafafa", "d2f5f5", "ff5aff", "fa375a", "41c3c8", "414b69"}},
	{"#18", 1, true, "2d2d2d", []string{"ff73e1", "ff7364", "64dcff", "4bff8c", "ffff5a"}},
	{"#19", 1, true, "505050", []string{"fafafa", "e6e6e6", "323232", "282828", "191919"}},
	{"#20", 1, true, "323232", []string{"ffffff", "f0f0f0", "d2d2d2", "b4b4b4", "ff5050"}},
	{"#21", 1, true, "3c3c3c", []string{"141414", "556982", "28323c", "646464", "ff7d19"}},
	{"#22", 1, true, "3c3c3c", []string{"141414", "556982", "28323c", "646464", "ff3232"}},
	{"#23", 1, true, "19555a", []string{"dcdcdc", "50cdc3", "f5fff5", "ff6969", "faeb96"}},
	{"#24", 1, true, "1e2d46", []string{"ffff9b", "6ed7f5", "f55a5a", "f5aad7", "788c96"}},
	{"#25", 1, true, "3c5a82", []string{"96c3d7", "e1fafa", "f06e4b", "283241", "3c465a"}},
	{"#26", 1, true, "464646", []string{"dc5a5a", "5a73a5", "ffffe6", "96b4d2", "696e78"}},
	{"#27", 1, true, "7d7d7d", []string{"00465f", "9bbeb9", "41b496", "e6fadc", "00ffb9"}},
	{"#28", 1, true, "141932", []string{"326e69", "19aa91", "289673", "32c396", "be3255"}},
	{"#29", 1, true, "143750", []string{"4baa8c", "5a7d8c", "f54646", "f58232", "f0dcaa", "91be6e"}},
	{"#30", 1, true, "464141", []string{"f0c364", "f5b9f5", "e1324b", "f0f0f0", "00a58c"}},
}
