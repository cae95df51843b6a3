package httpapi

// Client-facing messages. Internal error details are never sent; they are
// logged instead.
const (
	MsgServerRunning      = "Server is running"
	MsgEmailExists        = "Email already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTokenMissing       = "Token is missing"
	MsgTokenInvalid       = "Token is invalid"
	MsgItemAdded          = "Item added successfully"
	MsgItemUpdated        = "Item updated successfully"
	MsgItemDeleted        = "Item deleted successfully"
	MsgItemNotFound       = "Item not found"
	MsgInvalidID          = "Invalid ID format"
	MsgFetchItemFailed    = "Error fetching item"
	MsgInvalidRequest     = "Invalid request body"
	MsgBodyNotObject      = "Request body must be a JSON object"
	MsgBodyTooLarge       = "Request body too large"
	MsgMissingFields      = "Missing required fields"
	MsgPasswordTooLong    = "Password is too long"
	MsgInternal           = "Internal server error"
	MsgNotFound           = "Not found"
	MsgMethodNotAllowed   = "Method not allowed"
)
