package handler

import (
	"github.com/devstock/devices-server/internal/model"
)

type deviceRequest struct {
	DeviceName   string `json:"device_name"`
	Description  string `json:"description"`
	SerialNumber string `json:"serial_number"`
	Manufacturer string `json:"manufacturer"`
}

func (r deviceRequest) fields() model.DeviceFields {
	return model.DeviceFields{
		Name:         r.DeviceName,
		Description:  r.Description,
		SerialNumber: r.SerialNumber,
		Manufacturer: r.Manufacturer,
	}
}

type deviceResponse struct {
	ID           string  `json:"id"`
	DeviceName   string  `json:"device_name"`
	Description  string  `json:"description"`
	SerialNumber string  `json:"serial_number"`
	Manufacturer string  `json:"manufacturer"`
	ImagePath    *string `json:"image_path,omitempty"`
	HolderID     *string `json:"holder_id,omitempty"`
}

func toDeviceResponse(d model.Device) deviceResponse {
	resp := deviceResponse{
		ID:           d.ID.String(),
		DeviceName:   d.Name,
		Description:  d.Description,
		SerialNumber: d.SerialNumber,
		Manufacturer: d.Manufacturer,
		ImagePath:    d.ImagePath,
	}
	if d.HolderID != nil {
		holder := d.HolderID.String()
		resp.HolderID = &holder
	}
	return resp
}

func toDeviceResponses(devices []model.Device) []deviceResponse {
	resp := make([]deviceResponse, 0, len(devices))
	for _, d := range devices {
		resp = append(resp, toDeviceResponse(d))
	}
	return resp
}

// userResponse is the external representation of a user. The password digest
// deliberately has no field here.
type userResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	ImagePath *string `json:"image_path,omitempty"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		ImagePath: u.ImagePath,
	}
}

func toUserResponses(users []model.User) []userResponse {
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return resp
}
