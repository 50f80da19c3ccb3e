package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string  `json:"room_number" validate:"required,max=32"`
	Type   string  `json:"room_type"   validate:"required,oneof=Standard Deluxe Suite Family Honeymoon"`
	Price  float64 `json:"price"       validate:"gte=0"`
	Status string  `json:"status"      validate:"omitempty,oneof=available reserved occupied maintenance closed"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.Status(c.Status)
	if status == "" {
		status = model.StatusAvailable
	}

	now := timezone.Now()

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		Type:   model.Type(c.Type),
		Price:  c.Price,
		Status: status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// AvailabilityRequest is the optional stay window of a room listing.
type AvailabilityRequest struct {
	From string `json:"from" validate:"omitempty,date"`
	To   string `json:"to"   validate:"omitempty,date"`
}

type RoomResponse struct {
	ID     string  `json:"id"`
	Number string  `json:"room_number"`
	Type   string  `json:"room_type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomTypesResponse struct {
	Types []string `json:"types"`
}

func (r *RoomTypesResponse) FromModels(types []model.Type) {
	r.Types = make([]string, len(types))
	for i, typ := range types {
		r.Types[i] = string(typ)
	}
}
