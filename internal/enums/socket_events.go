package enums

// Client -> server events. Names are part of the wire protocol and must
// match the existing whiteboard client verbatim.
const (
	SOCKET_EVENT_JOIN_BOARD          = "join-board"
	SOCKET_EVENT_OBJECT_ADD          = "object-add"
	SOCKET_EVENT_OBJECT_UPDATE       = "object-update"
	SOCKET_EVENT_OBJECT_DELETE       = "object-delete"
	SOCKET_EVENT_OBJECT_SEND_TO_BACK = "object-send-to-back"
	SOCKET_EVENT_CLEAR_BOARD         = "clear-board"
	SOCKET_EVENT_CURSOR_MOVE         = "cursor-move"
	SOCKET_EVENT_USER_UPDATE         = "user-update"
	SOCKET_EVENT_TEXT_EDITING_START  = "text-editing-start"
	SOCKET_EVENT_TEXT_EDITING_END    = "text-editing-end"
)

// Server -> client events.
const (
	SOCKET_EVENT_BOARD_STATE          = "board-state"
	SOCKET_EVENT_ACTIVE_USERS         = "active-users"
	SOCKET_EVENT_USER_JOINED          = "user-joined"
	SOCKET_EVENT_USER_UPDATED         = "user-updated"
	SOCKET_EVENT_USER_LEFT            = "user-left"
	SOCKET_EVENT_OBJECT_ADDED         = "object-added"
	SOCKET_EVENT_OBJECT_UPDATED       = "object-updated"
	SOCKET_EVENT_OBJECT_DELETED       = "object-deleted"
	SOCKET_EVENT_OBJECT_SENT_TO_BACK  = "object-sent-to-back"
	SOCKET_EVENT_BOARD_CLEARED        = "board-cleared"
	SOCKET_EVENT_BOARD_DELETED        = "board-deleted"
	SOCKET_EVENT_CURSOR_MOVED         = "cursor-moved"
	SOCKET_EVENT_TEXT_EDITING_STARTED = "text-editing-started"
	SOCKET_EVENT_TEXT_EDITING_ENDED   = "text-editing-ended"
	SOCKET_EVENT_ERROR                = "error"
)
