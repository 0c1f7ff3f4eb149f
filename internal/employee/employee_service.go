package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-employee-api/internal/domain"
	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/events"
	"go-employee-api/internal/hierarchy"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/password"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (UpdateEmployeeResponse, error)
}

type service struct {
	repo      Repository
	hierarchy hierarchy.Service
	hasher    password.Hasher
	publisher EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	hierarchySvc hierarchy.Service,
	hasher password.Hasher,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(repo, hierarchySvc, hasher, publisher, time.Now, logger...)
}

func NewServiceWithClock(
	repo Repository,
	hierarchySvc hierarchy.Service,
	hasher password.Hasher,
	publisher EventPublisher,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:      repo,
		hierarchy: hierarchySvc,
		hasher:    hasher,
		publisher: publisher,
		now:       now,
		logger:    l,
	}
}

func (s *service) principal(ctx context.Context) (domain.Principal, bool) {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok || !s.hierarchy.IsAuthenticated(p) {
		return domain.Principal{}, false
	}
	return p, true
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Stringer("role", req.Role),
	)

	actor, ok := s.principal(ctx)
	if !ok {
		s.logger.Warn("create employee unauthenticated", zap.String("request_id", rid))
		return CreateEmployeeResponse{}, employeeerrors.ErrAuthenticationRequired
	}

	if !s.hierarchy.CanCreateEmployee(actor, req.Role) {
		s.logger.Warn("create employee denied by role hierarchy",
			zap.String("request_id", rid),
			zap.Stringer("actor_id", s.hierarchy.EmployeeIDOf(actor)),
			zap.Stringer("actor_role", actor.Role),
			zap.Stringer("target_role", req.Role),
		)
		return CreateEmployeeResponse{}, employeeerrors.ErrInsufficientRoleToCreate
	}

	email := normalizeEmail(req.Email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("create employee email lookup failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgCreateFailed)
	}
	if exists {
		return CreateEmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	document := NormalizeDocument(req.DocumentNumber)
	exists, err = s.repo.ExistsByDocumentNumber(ctx, document)
	if err != nil {
		s.logger.Error("create employee document lookup failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgCreateFailed)
	}
	if exists {
		return CreateEmployeeResponse{}, employeeerrors.ErrDocumentAlreadyExists
	}

	dob, err := time.Parse(dateLayout, strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		s.logger.Warn("create employee invalid date_of_birth",
			zap.String("date_of_birth", req.DateOfBirth),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
	}

	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return CreateEmployeeResponse{}, employeeerrors.ErrInvalidManagerID
	}

	// Validated with the plaintext password; the hash replaces it once valid.
	empl := New(NewEmployeeParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       NewEmail(email),
		Password:    req.Password,
		Document:    NewDocument(document),
		Phones:      phonesFrom(req.PhoneNumber1, req.PhoneNumber2),
		DateOfBirth: dob,
		Role:        req.Role,
		ManagerID:   managerID,
		Clock:       s.now,
	})
	if !empl.IsValid() {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Strings("violations", empl.Notifications()),
		)
		return CreateEmployeeResponse{}, apperror.Validation(empl.Notifications())
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgCreateFailed)
	}
	empl.UpdatePassword(hashed)

	if err := s.repo.Create(ctx, empl); err != nil {
		if errors.Is(err, employeeerrors.ErrEmailAlreadyExists) || errors.Is(err, employeeerrors.ErrDocumentAlreadyExists) {
			s.logger.Warn("create employee lost uniqueness race", zap.String("request_id", rid), zap.Error(err))
			return CreateEmployeeResponse{}, err
		}
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgCreateFailed)
	}

	s.publish(ctx, events.EventEmployeeCreated, empl, actor)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.Stringer("actor_id", s.hierarchy.EmployeeIDOf(actor)),
	)

	return CreateEmployeeResponse{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email.Address,
		Role:      empl.Role.String(),
		CreatedAt: empl.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgGetFailed)
	}

	return mapToResponse(empl), nil
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested")

	empls, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, apperror.Unexpected(err, employeeerrors.MsgListFailed)
	}

	return mapToListResponse(empls), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (UpdateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	actor, ok := s.principal(ctx)
	if !ok {
		return UpdateEmployeeResponse{}, employeeerrors.ErrAuthenticationRequired
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return UpdateEmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			s.logger.Warn("update employee not found", zap.String("employee_id", id))
			return UpdateEmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return UpdateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgUpdateFailed)
	}

	if !s.hierarchy.CanUpdateEmployee(actor, uid, empl.Role) {
		s.logger.Warn("update employee denied by role hierarchy",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Stringer("actor_id", s.hierarchy.EmployeeIDOf(actor)),
		)
		return UpdateEmployeeResponse{}, employeeerrors.ErrInsufficientPrivileges
	}

	empl.Update(req.FirstName, req.LastName)
	if req.Password != "" {
		empl.UpdatePassword(req.Password)
	}
	empl.UpdatePhones(phonesFrom(req.PhoneNumber1, req.PhoneNumber2))

	if !empl.IsValid() {
		s.logger.Warn("update employee validation failed",
			zap.String("employee_id", id),
			zap.Strings("violations", empl.Notifications()),
		)
		return UpdateEmployeeResponse{}, apperror.Validation(empl.Notifications())
	}

	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			s.logger.Error("update employee hash password failed", zap.Error(err))
			return UpdateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgUpdateFailed)
		}
		empl.UpdatePassword(hashed)
	}

	empl.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, empl); err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return UpdateEmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return UpdateEmployeeResponse{}, apperror.Unexpected(err, employeeerrors.MsgUpdateFailed)
	}

	s.publish(ctx, events.EventEmployeeUpdated, empl, actor)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return UpdateEmployeeResponse{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email.Address,
		UpdatedAt: empl.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// publish never fails the request; a lost event is only logged.
func (s *service) publish(ctx context.Context, eventType string, empl *Employee, actor domain.Principal) {
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: empl.ID.String(),
		ActorID:    s.hierarchy.EmployeeIDOf(actor).String(),
		Role:       empl.Role.String(),
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishEmployeeLifecycle(ctx, event); err != nil {
		s.logger.Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
	}
}

func normalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// phonesFrom skips blank numbers.
func phonesFrom(numbers ...string) []Phone {
	phones := make([]Phone, 0, len(numbers))
	for _, n := range numbers {
		if n == "" {
			continue
		}
		phones = append(phones, NewPhone(n))
	}
	return phones
}

func parseOptionalUUID(v string) (*uuid.UUID, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapToResponse(empl *Employee) EmployeeResponse {
	phones := make([]PhoneResponse, len(empl.Phones))
	for i, p := range empl.Phones {
		phones[i] = PhoneResponse{ID: p.ID.String(), Number: p.Number}
	}

	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		Email:          empl.Email.Address,
		DocumentNumber: empl.Document.Number,
		Phones:         phones,
		DateOfBirth:    empl.DateOfBirth.Format(dateLayout),
		Role:           empl.Role.String(),
		CreatedAt:      empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.ManagerID != nil {
		resp.ManagerID = empl.ManagerID.String()
	}
	return resp
}

func mapToListResponse(empls []*Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
