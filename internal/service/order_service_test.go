package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/Akshat190/qr-main/internal/entity"
)

type fakeOrderStore struct {
	orders  map[int]*entity.Order
	nextID  int
	revenue map[string]float64
	err     error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:  map[int]*entity.Order{},
		nextID:  1,
		revenue: map[string]float64{},
	}
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *entity.Order) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *order
	stored.ID = f.nextID
	stored.Items = append([]entity.OrderItem(nil), order.Items...)
	f.nextID++
	f.orders[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (f *fakeOrderStore) GetOrderByID(_ context.Context, id int) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	result := *order
	result.Items = append([]entity.OrderItem(nil), order.Items...)
	return &result, nil
}

func (f *fakeOrderStore) ListActiveOrders(_ context.Context, restaurantID string) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Order
	for _, order := range f.orders {
		if order.RestaurantID == restaurantID && order.Status == entity.StatusPending {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakeOrderStore) CompleteOrder(ctx context.Context, restaurantID string, id int) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	order, ok := f.orders[id]
	if !ok || order.RestaurantID != restaurantID {
		return nil, entity.ErrOrderNotFound
	}
	if !entity.CanTransition(order.Status, entity.StatusCompleted) {
		return nil, entity.ErrInvalidTransition
	}
	order.Status = entity.StatusCompleted
	month := time.Now().UTC().Format("2006-01")
	f.revenue[restaurantID+"/"+month] += order.TotalPrice
	return f.GetOrderByID(ctx, id)
}

func (f *fakeOrderStore) DeleteOrder(_ context.Context, restaurantID string, id int) error {
	if f.err != nil {
		return f.err
	}
	order, ok := f.orders[id]
	if !ok || order.RestaurantID != restaurantID {
		return entity.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderStore) GetRevenue(_ context.Context, restaurantID, month string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.revenue[restaurantID+"/"+month], nil
}

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		Items: []entity.OrderItem{
			{MenuItemID: "a", Name: "Burger", Price: 10, Quantity: 2},
			{MenuItemID: "b", Name: "Coke", Price: 5, Quantity: 1},
		},
		TableNumber: 7,
		TotalPrice:  25,
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Setenv("ENV", "test")

	tests := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr error
	}{
		{
			name:    "valid request",
			mutate:  func(r *SubmitRequest) {},
			wantErr: nil,
		},
		{
			name:    "no items",
			mutate:  func(r *SubmitRequest) { r.Items = nil },
			wantErr: entity.ErrInvalidOrder,
		},
		{
			name:    "zero table number",
			mutate:  func(r *SubmitRequest) { r.TableNumber = 0 },
			wantErr: entity.ErrInvalidOrder,
		},
		{
			name:    "missing menu item id",
			mutate:  func(r *SubmitRequest) { r.Items[0].MenuItemID = "" },
			wantErr: entity.ErrInvalidOrder,
		},
		{
			name:    "negative price",
			mutate:  func(r *SubmitRequest) { r.Items[0].Price = -1 },
			wantErr: entity.ErrInvalidOrder,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *SubmitRequest) { r.Items[1].Quantity = 0 },
			wantErr: entity.ErrInvalidOrder,
		},
		{
			name:    "client total does not match items",
			mutate:  func(r *SubmitRequest) { r.TotalPrice = 30 },
			wantErr: entity.ErrInvalidOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrderStore()
			svc := NewOrderService(store, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), "rest-1", req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && len(store.orders) != 0 {
				t.Error("expected no order persisted on validation failure")
			}
		})
	}
}

func TestSubmitCreatesPendingOrder(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)

	order, err := svc.Submit(context.Background(), "rest-1", validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if order.ID == 0 {
		t.Error("expected a generated order id")
	}
	if order.TotalPrice != 25 {
		t.Errorf("TotalPrice = %v, want 25", order.TotalPrice)
	}
	if len(order.Items) != 2 {
		t.Errorf("items length = %d, want 2", len(order.Items))
	}
	if order.Status != entity.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.Timestamp.IsZero() {
		t.Error("expected a server-assigned timestamp")
	}
}

func TestSubmitSnapshotsItems(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)

	req := validRequest()
	order, err := svc.Submit(context.Background(), "rest-1", req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// mutate the caller's items after submission, the stored snapshot must
	// not change
	req.Items[0].Name = "Renamed"
	req.Items[0].Price = 99

	fetched, err := svc.GetOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if fetched.Items[0].Name != "Burger" || fetched.Items[0].Price != 10 {
		t.Errorf("stored snapshot changed: %+v", fetched.Items[0])
	}
}

func TestSubmitGetRoundTrip(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)

	created, err := svc.Submit(context.Background(), "rest-1", validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	fetched, err := svc.GetOrder(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}

	if !reflect.DeepEqual(fetched.Items, created.Items) {
		t.Errorf("items mismatch: got %+v, want %+v", fetched.Items, created.Items)
	}
	if fetched.TableNumber != created.TableNumber || fetched.TotalPrice != created.TotalPrice {
		t.Errorf("order mismatch: got %+v, want %+v", fetched, created)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	order, err := svc.Submit(ctx, "rest-1", validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	completed, err := svc.UpdateStatus(ctx, "rest-1", order.ID, entity.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if completed.Status != entity.StatusCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}

	revenue, err := svc.Revenue(ctx, "rest-1", time.Now())
	if err != nil {
		t.Fatalf("Revenue() error = %v", err)
	}
	if revenue != 25 {
		t.Errorf("revenue = %v, want 25", revenue)
	}

	// a retried completion must not double-credit revenue
	_, err = svc.UpdateStatus(ctx, "rest-1", order.ID, entity.StatusCompleted)
	if !errors.Is(err, entity.ErrInvalidTransition) {
		t.Errorf("second completion error = %v, want ErrInvalidTransition", err)
	}

	revenue, err = svc.Revenue(ctx, "rest-1", time.Now())
	if err != nil {
		t.Fatalf("Revenue() error = %v", err)
	}
	if revenue != 25 {
		t.Errorf("revenue after retry = %v, want 25", revenue)
	}
}

func TestUpdateStatusRejections(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	order, err := svc.Submit(ctx, "rest-1", validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, "rest-1", order.ID, entity.StatusPending); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Errorf("pending target error = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.UpdateStatus(ctx, "rest-1", order.ID, entity.Status("cancelled")); !errors.Is(err, entity.ErrInvalidOrder) {
		t.Errorf("unknown status error = %v, want ErrInvalidOrder", err)
	}
	if _, err := svc.UpdateStatus(ctx, "rest-1", 999, entity.StatusCompleted); !errors.Is(err, entity.ErrOrderNotFound) {
		t.Errorf("missing order error = %v, want ErrOrderNotFound", err)
	}
}

func TestDeleteOrder(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	order, err := svc.Submit(ctx, "rest-1", validRequest())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// deletion is allowed regardless of status, even after completion
	if _, err := svc.UpdateStatus(ctx, "rest-1", order.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := svc.Delete(ctx, "rest-1", order.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetOrder(ctx, order.ID); !errors.Is(err, entity.ErrOrderNotFound) {
		t.Errorf("GetOrder after delete error = %v, want ErrOrderNotFound", err)
	}
	if err := svc.Delete(ctx, "rest-1", order.ID); !errors.Is(err, entity.ErrOrderNotFound) {
		t.Errorf("second delete error = %v, want ErrOrderNotFound", err)
	}
}

func TestListActiveNewestFirst(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		store.orders[i+1] = &entity.Order{
			ID:           i + 1,
			RestaurantID: "rest-1",
			Status:       entity.StatusPending,
			TableNumber:  i + 1,
			Timestamp:    base.Add(time.Duration(i) * time.Hour),
		}
	}
	store.orders[4] = &entity.Order{
		ID:           4,
		RestaurantID: "rest-1",
		Status:       entity.StatusCompleted,
		Timestamp:    base.Add(10 * time.Hour),
	}
	store.nextID = 5

	orders, err := svc.ListActive(ctx, "rest-1")
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}

	if len(orders) != 3 {
		t.Fatalf("expected 3 pending orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].Timestamp.After(orders[i-1].Timestamp) {
			t.Errorf("orders not sorted newest first: %v before %v", orders[i-1].Timestamp, orders[i].Timestamp)
		}
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	t.Setenv("ENV", "test")
	store := newFakeOrderStore()
	store.err = fmt.Errorf("connection refused")
	svc := NewOrderService(store, nil)

	if _, err := svc.Submit(context.Background(), "rest-1", validRequest()); err == nil {
		t.Error("expected store failure to surface")
	}
}
