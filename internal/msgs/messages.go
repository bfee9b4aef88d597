package msgs

const (
	MsgOperationFailed          = "Operation failed"
	MsgOperationSuccessful      = "Operation successful"
	MsgBoardCreatedSuccessfully = "Board created successfully"
	MsgBoardDeletedSuccessfully = "Board deleted successfully"
)
