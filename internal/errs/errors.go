package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody  = Error("invalid request body")
	ErrInvalidBoardId      = Error("invalid board id")
	ErrBoardNotFound       = Error("board not found")
	ErrObjectNotFound      = Error("object not found")
	ErrInvalidEventPayload = Error("invalid event payload")
	ErrInvalidObjectType   = Error("invalid object type")
	ErrInvalidUserId       = Error("user id is empty")
	ErrInvalidUserName     = Error("user name is empty")
	ErrInvalidUser         = Error("invalid user")
	ErrUserNotJoined       = Error("user has not joined a board")
	ErrInvalidTemplate     = Error("invalid template")
)
