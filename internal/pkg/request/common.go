package request

// ByIDRequest binds endpoints that take a single UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ByTalentIDRequest binds endpoints keyed by a talent's UUID.
type ByTalentIDRequest struct {
	TalentID string `uri:"talentId" binding:"required,uuid"`
}
