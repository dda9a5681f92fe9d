package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	techniquev1alpha1 "github.com/KirkDiggler/rpg-technique-api/gen/go/technique/api/v1alpha1"
	"github.com/KirkDiggler/rpg-technique-api/internal/catalog"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	entities "github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/handlers/technique/v1alpha1"
	"github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique"
	techniquemock "github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique/mock"
	"github.com/KirkDiggler/rpg-technique-api/internal/services/export"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils/builders"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *techniquemock.MockService
	catalog     *catalog.Static

	server *grpc.Server
	conn   *grpc.ClientConn
	client techniquev1alpha1.TechniqueServiceClient
	ctx    context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = techniquemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TechniqueService: s.mockService,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	techniquev1alpha1.RegisterTechniqueServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = techniquev1alpha1.NewTechniqueServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) effect(id string) *entities.Effect {
	e, ok := s.catalog.Effect(id)
	s.Require().True(ok, "effect %s", id)
	return e
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code(), st.Message())
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateTechnique() {
	t := builders.NewTechniqueBuilder().WithName("Nueva").Build()

	s.mockService.EXPECT().
		CreateTechnique(gomock.Any(), &technique.CreateTechniqueInput{Name: "Nueva"}).
		Return(&technique.CreateTechniqueOutput{
			Technique: t,
			Summary:   &engine.Summary{},
		}, nil)

	resp, err := s.client.CreateTechnique(s.ctx, &techniquev1alpha1.CreateTechniqueRequest{Name: "Nueva"})
	s.Require().NoError(err)

	s.Equal(testutils.TestTechniqueID, resp.Technique.Id)
	s.Equal("Nueva", resp.Technique.Name)
	s.Empty(resp.Technique.Level)
	s.Empty(resp.Technique.Effects)
	s.Equal(t.ExpiresAt, resp.Technique.ExpiresAt)
	s.False(resp.Summary.CanAdd)
}

func (s *HandlerTestSuite) TestGetTechnique() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithForce(entities.ForceChaos).
		WithEffect(s.effect("of_bono_ataque"), engine.Choice{OptionID: "sacrifice", Value: entities.BooleanOn}).
		Build()

	s.mockService.EXPECT().
		GetTechnique(gomock.Any(), &technique.GetTechniqueInput{TechniqueID: t.ID}).
		Return(&technique.GetTechniqueOutput{
			Technique: t,
			Summary:   &engine.Summary{Budget: 10, TotalCost: 7, CanAdd: true},
		}, nil)

	resp, err := s.client.GetTechnique(s.ctx, &techniquev1alpha1.GetTechniqueRequest{TechniqueId: t.ID})
	s.Require().NoError(err)

	s.Equal("Nivel 1", resp.Technique.Level)
	s.Equal("Caos", resp.Technique.Force)
	s.Equal(int32(2), resp.Technique.ResistanceCost)
	s.Require().Len(resp.Technique.Effects, 1)

	inst := resp.Technique.Effects[0]
	s.Equal("of_bono_ataque-1", inst.Id)
	s.Equal("Efectos ofensivos", inst.Category)
	s.Equal(int32(7), inst.FinalCost)
	s.False(inst.IsSecondary)
	s.Len(inst.SelectedOptions, 3)
	s.Equal(int32(10), resp.Summary.Budget)
	s.Equal(int32(7), resp.Summary.TotalCost)
}

func (s *HandlerTestSuite) TestGetTechniqueErrors() {
	_, err := s.client.GetTechnique(s.ctx, &techniquev1alpha1.GetTechniqueRequest{})
	s.requireCode(err, codes.InvalidArgument)

	s.mockService.EXPECT().
		GetTechnique(gomock.Any(), &technique.GetTechniqueInput{TechniqueID: "tech_missing"}).
		Return(nil, errors.NotFound("technique draft not found"))

	_, err = s.client.GetTechnique(s.ctx, &techniquev1alpha1.GetTechniqueRequest{TechniqueId: "tech_missing"})
	s.requireCode(err, codes.NotFound)
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestDeleteTechnique() {
	s.mockService.EXPECT().
		DeleteTechnique(gomock.Any(), &technique.DeleteTechniqueInput{TechniqueID: "tech_1"}).
		Return(&technique.DeleteTechniqueOutput{}, nil)

	_, err := s.client.DeleteTechnique(s.ctx, &techniquev1alpha1.DeleteTechniqueRequest{TechniqueId: "tech_1"})
	s.NoError(err)
}

func (s *HandlerTestSuite) TestResetTechnique() {
	t := builders.NewTechniqueBuilder().WithName("").Build()

	s.mockService.EXPECT().
		ResetTechnique(gomock.Any(), &technique.ResetTechniqueInput{TechniqueID: t.ID}).
		Return(&technique.ResetTechniqueOutput{Technique: t, Summary: &engine.Summary{}}, nil)

	resp, err := s.client.ResetTechnique(s.ctx, &techniquev1alpha1.ResetTechniqueRequest{TechniqueId: t.ID})
	s.Require().NoError(err)
	s.Empty(resp.Technique.Name)
}

func (s *HandlerTestSuite) TestSetLevel() {
	testCases := []struct {
		input    string
		expected entities.PowerLevel
	}{
		{"2", entities.PowerLevel2},
		{"Nivel 3", entities.PowerLevel3},
		{"apoyo", entities.PowerLevelSupport},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			t := builders.NewTechniqueBuilder().WithLevel(tc.expected).Build()

			s.mockService.EXPECT().
				SetLevel(gomock.Any(), &technique.SetLevelInput{TechniqueID: t.ID, Level: tc.expected}).
				Return(&technique.SetLevelOutput{
					Technique:      t,
					Summary:        &engine.Summary{CanAdd: true},
					RemovedEffects: 3,
				}, nil)

			resp, err := s.client.SetLevel(s.ctx, &techniquev1alpha1.SetLevelRequest{TechniqueId: t.ID, Level: tc.input})
			s.Require().NoError(err)
			s.Equal(string(tc.expected), resp.Technique.Level)
			s.Equal(int32(3), resp.RemovedEffects)
		})
	}
}

func (s *HandlerTestSuite) TestSetLevelUnknown() {
	_, err := s.client.SetLevel(s.ctx, &techniquev1alpha1.SetLevelRequest{TechniqueId: "tech_1", Level: "Nivel 4"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestSetForce() {
	t := builders.NewTechniqueBuilder().WithForce(entities.ForceDestruction).Build()

	s.mockService.EXPECT().
		SetForce(gomock.Any(), &technique.SetForceInput{TechniqueID: t.ID, Force: entities.ForceDestruction}).
		Return(&technique.SetForceOutput{
			Technique: t,
			Summary:   &engine.Summary{IncompatibleInstanceIDs: []string{"x-1"}},
		}, nil)

	resp, err := s.client.SetForce(s.ctx, &techniquev1alpha1.SetForceRequest{TechniqueId: t.ID, Force: "destruccion"})
	s.Require().NoError(err)
	s.Equal("Destrucción", resp.Technique.Force)
	s.Equal([]string{"x-1"}, resp.Summary.IncompatibleInstanceIds)

	_, err = s.client.SetForce(s.ctx, &techniquev1alpha1.SetForceRequest{TechniqueId: t.ID, Force: "Luz"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestUpdateDetails() {
	name := "Otra"
	t := builders.NewTechniqueBuilder().WithName(name).Build()

	s.mockService.EXPECT().
		UpdateDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *technique.UpdateDetailsInput) (*technique.UpdateDetailsOutput, error) {
			s.Require().NotNil(input.Name)
			s.Equal(name, *input.Name)
			s.Nil(input.Description)
			return &technique.UpdateDetailsOutput{Technique: t, Summary: &engine.Summary{}}, nil
		})

	resp, err := s.client.UpdateDetails(s.ctx, &techniquev1alpha1.UpdateDetailsRequest{TechniqueId: t.ID, Name: &name})
	s.Require().NoError(err)
	s.Equal(name, resp.Technique.Name)
}

func (s *HandlerTestSuite) TestUpdateDetailsKeepsPresence() {
	empty := ""
	t := builders.NewTechniqueBuilder().Build()

	s.mockService.EXPECT().
		UpdateDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *technique.UpdateDetailsInput) (*technique.UpdateDetailsOutput, error) {
			s.Nil(input.Name)
			s.Require().NotNil(input.Description)
			s.Empty(*input.Description)
			return &technique.UpdateDetailsOutput{Technique: t, Summary: &engine.Summary{}}, nil
		})

	_, err := s.client.UpdateDetails(s.ctx, &techniquev1alpha1.UpdateDetailsRequest{
		TechniqueId: t.ID,
		Description: &empty,
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestSetResistanceCost() {
	t := builders.NewTechniqueBuilder().WithResistanceCost(12).Build()

	s.mockService.EXPECT().
		SetResistanceCost(gomock.Any(), &technique.SetResistanceCostInput{TechniqueID: t.ID, Value: "12 pts"}).
		Return(&technique.SetResistanceCostOutput{Technique: t, Summary: &engine.Summary{}}, nil)

	resp, err := s.client.SetResistanceCost(s.ctx, &techniquev1alpha1.SetResistanceCostRequest{
		TechniqueId: t.ID,
		Value:       "12 pts",
	})
	s.Require().NoError(err)
	s.Equal(int32(12), resp.Technique.ResistanceCost)
}

func (s *HandlerTestSuite) TestAddEffect() {
	t := builders.NewTechniqueBuilder().
		WithLevel(entities.PowerLevel1).
		WithEffect(s.effect("of_bono_ataque"), engine.Choice{OptionID: "bonus_select", Value: "+3"}).
		Build()
	inst := t.Effects[0]

	s.mockService.EXPECT().
		AddEffect(gomock.Any(), &technique.AddEffectInput{
			TechniqueID: t.ID,
			EffectID:    "of_bono_ataque",
			Choices:     []engine.Choice{{OptionID: "bonus_select", Value: "+3"}},
		}).
		Return(&technique.AddEffectOutput{
			Technique: t,
			Instance:  &inst,
			Summary:   &engine.Summary{Budget: 10, TotalCost: 5, CanAdd: true},
		}, nil)

	resp, err := s.client.AddEffect(s.ctx, &techniquev1alpha1.AddEffectRequest{
		TechniqueId: t.ID,
		EffectId:    "of_bono_ataque",
		Choices:     []*techniquev1alpha1.Choice{{OptionId: "bonus_select", Value: "+3"}},
	})
	s.Require().NoError(err)

	s.Equal(inst.ID, resp.Instance.Id)
	s.Equal(int32(5), resp.Instance.FinalCost)
	s.Equal("+3", resp.Instance.SelectedOptions[0].Value)
	s.Equal(int32(5), resp.Summary.TotalCost)
}

func (s *HandlerTestSuite) TestAddEffectErrors() {
	_, err := s.client.AddEffect(s.ctx, &techniquev1alpha1.AddEffectRequest{TechniqueId: "tech_1"})
	s.requireCode(err, codes.InvalidArgument)

	s.mockService.EXPECT().
		AddEffect(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("choose a power level before adding effects"))

	_, err = s.client.AddEffect(s.ctx, &techniquev1alpha1.AddEffectRequest{TechniqueId: "tech_1", EffectId: "of_bono_ataque"})
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestRemoveEffect() {
	t := builders.NewTechniqueBuilder().WithLevel(entities.PowerLevel1).Build()

	s.mockService.EXPECT().
		RemoveEffect(gomock.Any(), &technique.RemoveEffectInput{TechniqueID: t.ID, InstanceID: "of_bono_ataque-1"}).
		Return(&technique.RemoveEffectOutput{Technique: t, Summary: &engine.Summary{Budget: 10}}, nil)

	resp, err := s.client.RemoveEffect(s.ctx, &techniquev1alpha1.RemoveEffectRequest{
		TechniqueId: t.ID,
		InstanceId:  "of_bono_ataque-1",
	})
	s.Require().NoError(err)
	s.Empty(resp.Technique.Effects)

	_, err = s.client.RemoveEffect(s.ctx, &techniquev1alpha1.RemoveEffectRequest{TechniqueId: t.ID})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestListCatalog() {
	effect := s.effect("of_bono_ataque")

	s.mockService.EXPECT().
		ListCatalog(gomock.Any(), &technique.ListCatalogInput{
			Force:    entities.ForceCreation,
			Category: entities.CategoryOffensive,
		}).
		Return(&technique.ListCatalogOutput{
			Categories: entities.Categories(),
			Effects:    []*entities.Effect{effect},
		}, nil)

	resp, err := s.client.ListCatalog(s.ctx, &techniquev1alpha1.ListCatalogRequest{
		Force:    "creacion",
		Category: "efectos ofensivos",
	})
	s.Require().NoError(err)

	s.Len(resp.Categories, len(entities.Categories()))
	s.Len(resp.Levels, 4)
	s.Equal("Apoyo", resp.Levels[0].Level)
	s.Equal(int32(5), resp.Levels[0].Budget)
	s.Len(resp.Forces, 6)

	s.Require().Len(resp.Effects, 1)
	e := resp.Effects[0]
	s.Equal(effect.ID, e.Id)
	s.Equal([]string{"Conservación", "Creación", "Orden"}, e.Restrictions)
	s.Require().Len(e.Options, len(effect.Options))
	s.Equal("select", e.Options[0].Kind)
	s.Len(e.Options[0].Values, 5)

	var sacrifice *techniquev1alpha1.Option
	for _, o := range e.Options {
		if o.GetId() == "sacrifice" {
			sacrifice = o
		}
	}
	s.Require().NotNil(sacrifice)
	s.Equal("boolean", sacrifice.Kind)
	s.Equal(int32(5), sacrifice.Cost)

	_, err = s.client.ListCatalog(s.ctx, &techniquev1alpha1.ListCatalogRequest{Category: "Magia"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestPreviewEffect() {
	effect := s.effect("of_bono_ataque")
	preview := &engine.Preview{
		Selected:         engine.DefaultSelections(effect),
		Options:          effect.Options,
		PreSurchargeCost: 2,
		IsSecondary:      true,
		Surcharge:        engine.SecondarySurcharge,
		FinalCost:        4,
		Compatible:       true,
		CanAdd:           true,
		FitsBudget:       true,
	}

	s.mockService.EXPECT().
		PreviewEffect(gomock.Any(), &technique.PreviewEffectInput{
			TechniqueID: "tech_1",
			EffectID:    effect.ID,
			Choices:     []engine.Choice{},
		}).
		Return(&technique.PreviewEffectOutput{Effect: effect, Preview: preview}, nil)

	resp, err := s.client.PreviewEffect(s.ctx, &techniquev1alpha1.PreviewEffectRequest{
		TechniqueId: "tech_1",
		EffectId:    effect.ID,
	})
	s.Require().NoError(err)

	s.Equal(effect.ID, resp.Effect.Id)
	s.Len(resp.Selected, 2)
	s.Equal(int32(2), resp.PreSurchargeCost)
	s.Equal(int32(2), resp.Surcharge)
	s.Equal(int32(4), resp.FinalCost)
	s.True(resp.IsSecondary)
	s.True(resp.FitsBudget)
}

func (s *HandlerTestSuite) TestExportText() {
	s.mockService.EXPECT().
		ExportText(gomock.Any(), &technique.ExportTextInput{TechniqueID: "tech_1"}).
		Return(&technique.ExportTextOutput{Document: &export.Document{
			Text:     "--- TÉCNICA: Golpe ---",
			Slug:     "golpe",
			FileName: "golpe.txt",
		}}, nil)

	resp, err := s.client.ExportText(s.ctx, &techniquev1alpha1.ExportTextRequest{TechniqueId: "tech_1"})
	s.Require().NoError(err)
	s.Equal("--- TÉCNICA: Golpe ---", resp.Text)
	s.Equal("golpe.txt", resp.FileName)

	s.mockService.EXPECT().
		ExportText(gomock.Any(), &technique.ExportTextInput{TechniqueID: "tech_2"}).
		Return(nil, errors.FailedPrecondition("choose a power level before exporting"))

	_, err = s.client.ExportText(s.ctx, &techniquev1alpha1.ExportTextRequest{TechniqueId: "tech_2"})
	s.requireCode(err, codes.FailedPrecondition)
}
