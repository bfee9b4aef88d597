package handlers

import (
	"log"
	"net/http"
	"retroBoard/internal/errs"
	"retroBoard/internal/models"
	"retroBoard/internal/msgs"
	"retroBoard/internal/services"
	"retroBoard/internal/validators"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	boardService       *services.BoardService
	socketBoardHandler *SocketBoardHandler
}

func NewRestHandler(
	boardService *services.BoardService,
	socketBoardHandler *SocketBoardHandler,
) *RestHandler {
	return &RestHandler{
		boardService:       boardService,
		socketBoardHandler: socketBoardHandler,
	}
}

// GetBoards godoc
// @Summary      List boards
// @Description  Get summaries of all boards, most recently modified first
// @Tags         boards
// @Produce      json
// @Success      200  {array}  models.BoardSummary
// @Router       /boards [get]
func (rh *RestHandler) GetBoards(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, rh.boardService.ListSummaries())
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Get the full board, creating an empty one for unknown ids
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  models.Board
// @Router       /boards/{id} [get]
func (rh *RestHandler) GetBoard(ctx *gin.Context) {
	boardId := ctx.Param("id")
	ctx.JSON(http.StatusOK, rh.boardService.GetOrCreate(boardId))
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Create a new board, optionally seeded from a template
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        board  body      models.CreateBoardRequest  true  "Board to create"
// @Success      200    {object}  models.Board
// @Failure      400    {object}  models.Response
// @Router       /boards [post]
func (rh *RestHandler) CreateBoard(ctx *gin.Context) {
	var errors []error

	var request models.CreateBoardRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Println("Error create board json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	if validationErrs := validators.ValidateCreateBoard(&request); len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	board := rh.boardService.CreateBoard(request.Name, request.Template)
	ctx.JSON(http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Delete the board and evict everyone from its room
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /boards/{id} [delete]
func (rh *RestHandler) DeleteBoard(ctx *gin.Context) {
	boardId := ctx.Param("id")

	if _, err := rh.boardService.DeleteBoard(boardId); err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrBoardNotFound},
		})
		return
	}

	// Notify all users in this board room that the board was deleted
	rh.socketBoardHandler.NotifyBoardDeleted(boardId)

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgBoardDeletedSuccessfully,
	})
}
