package v1

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
