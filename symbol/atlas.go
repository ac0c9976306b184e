package symbol

// Atlas memoizes classification per code and hands out dense, stable
// indices in first-seen order, e.g. for slots in a texture sheet.
// The zero value is not usable; call NewAtlas. An Atlas is owned by one
// caller and is not safe for concurrent use.
type Atlas struct {
	index map[uint32]int
	codes []uint32
	cats  []Category
}

// NewAtlas returns an empty Atlas.
func NewAtlas() *Atlas {
	return &Atlas{index: make(map[uint32]int)}
}

// Index returns the slot of code, registering and classifying it on first use.
func (a *Atlas) Index(code uint32) int {
	code &= Mask
	if i, ok := a.index[code]; ok {
		return i
	}
	i := len(a.codes)
	a.index[code] = i
	a.codes = append(a.codes, code)
	a.cats = append(a.cats, Classify(code))
	return i
}

// Category returns the memoized category of code.
func (a *Atlas) Category(code uint32) Category {
	return a.cats[a.Index(code)]
}

// Symbol returns the Symbol for code using the memoized category.
func (a *Atlas) Symbol(code uint32) Symbol {
	code &= Mask
	return Symbol{Code: code, Category: a.Category(code)}
}

// Len returns the number of registered codes.
func (a *Atlas) Len() int {
	return len(a.codes)
}

// Codes returns the registered codes in slot order.
func (a *Atlas) Codes() []uint32 {
	out := make([]uint32, len(a.codes))
	copy(out, a.codes)
	return out
}
