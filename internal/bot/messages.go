package bot

// User-facing texts.
const (
	MsgStart = "Hi! I help you keep track of shared bills.\n\n" +
		"/newbill - create a new bill\n" +
		"/start - show this message"
	MsgRequestBillName    = "Send me a name for the new bill you want to create."
	MsgInvalidBillName    = "Sorry, the bill name provided is invalid. Name of the bill can only be 250 characters long."
	MsgSomethingWentWrong = "Sorry, an error has occurred. Please try again in a few moments."
)

// Callback acknowledgements.
const (
	AnswerAdd     = "Add"
	AnswerEdit    = "Edit"
	AnswerDone    = "Done"
	AnswerNothing = "nothing"
)
