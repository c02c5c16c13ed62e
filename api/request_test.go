package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shreya029/foodshare/api/mocks"
	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/schema"
)

func TestCreateRequestMapsFormFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().CreateRequest(gomock.Any(), recipBob).DoAndReturn(
		func(r *schema.Request, _ lifecycle.Identity) (*schema.Request, error) {
			assert.Equal(t, "Rice", r.FoodType)
			assert.Equal(t, "2 kg", r.Quantity)
			assert.Equal(t, "for a family of four", r.Description)
			assert.Equal(t, "2 Shelter Rd", r.DeliveryAddress)
			assert.Nil(t, r.Donation)
			r.ID = primitive.NewObjectID()
			r.Status = schema.RequestPending
			return r, nil
		}).Times(1)

	router := newTestServer(m)
	w := serve(t, router, testRequest{
		method:   "POST",
		path:     "/api/requests/create",
		identity: &recipBob,
		body: map[string]string{
			"foodType":           "Rice",
			"requestQuantity":    "2 kg",
			"preferredDate":      "2024-03-11T10:00:00Z",
			"requestDescription": "for a family of four",
			"deliveryAddress":    "2 Shelter Rd",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestListRequestsIsAdminOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().ListRequests(schema.Page{Number: 1, Limit: schema.DefaultPageLimit}).
		Return([]schema.Request{}, int64(0), nil).Times(1)

	router := newTestServer(m)

	w := serve(t, router, testRequest{method: "GET", path: "/api/requests", identity: &recipBob})
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1002), decodeEnvelope(t, w).Code)

	w = serve(t, router, testRequest{method: "GET", path: "/api/requests", identity: &adminEve})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListMyRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().ListRequestsByRecipient("bob").Return([]schema.RequestDetail{
		{
			Request:        schema.Request{FoodType: "Bread", Recipient: "bob"},
			DonationDetail: &schema.Donation{FoodName: "Bread", Status: schema.DonationReserved},
		},
	}, nil).Times(1)

	router := newTestServer(m)
	w := serve(t, router, testRequest{method: "GET", path: "/api/requests/my", identity: &recipBob})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"donationDetail"`)
}

func TestUpdateRequestStatusDenied(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	id := primitive.NewObjectID()
	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().UpdateRequest(id, recipBob, gomock.Any()).Return(nil, lifecycle.ErrStatusChangeDenied).Times(1)

	router := newTestServer(m)
	w := serve(t, router, testRequest{
		method:   "PUT",
		path:     "/api/requests/" + id.Hex(),
		identity: &recipBob,
		body:     map[string]string{"status": "approved"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1301), decodeEnvelope(t, w).Code)
}

func TestDeleteRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	id := primitive.NewObjectID()
	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().DeleteRequest(id, recipBob).Return(nil).Times(1)

	router := newTestServer(m)
	w := serve(t, router, testRequest{
		method:   "DELETE",
		path:     "/api/requests/" + id.Hex(),
		identity: &recipBob,
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestGetRequestInternalFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	id := primitive.NewObjectID()
	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().GetRequest(id, recipBob).Return(nil, errors.New("connection reset")).Times(1)

	router := newTestServer(m)
	w := serve(t, router, testRequest{
		method:   "GET",
		path:     "/api/requests/" + id.Hex(),
		identity: &recipBob,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	e := decodeEnvelope(t, w)
	assert.Equal(t, int64(999), e.Code)
	assert.NotContains(t, e.Message, "connection reset")
}
