package components

const (
	// ListWidth is the inner width of a list
	ListWidth = 30

	// CardWidth is the inner width of a card inside a list
	CardWidth = ListWidth - 4

	// cardTitleLines is the number of title lines a card shows
	cardTitleLines = 2

	// CardHeight is the rendered height of a card, border included
	CardHeight = cardTitleLines + 2
)
