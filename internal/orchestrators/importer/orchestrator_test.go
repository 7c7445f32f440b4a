package importer_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	compendiummock "github.com/KirkDiggler/statblock-importer/internal/clients/compendium/mock"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
	actormock "github.com/KirkDiggler/statblock-importer/internal/repositories/actor/mock"
	conversionmock "github.com/KirkDiggler/statblock-importer/internal/services/conversion/mock"
	"github.com/KirkDiggler/statblock-importer/internal/testutils"
)

const testActorID = "actor_1"

// fixedRoller rolls every die as value
type fixedRoller struct {
	value int
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, nil }

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *actormock.MockRepository
	mockCompendium *compendiummock.MockClient
	orchestrator   importer.Service
	ctx            context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = actormock.NewMockRepository(s.ctrl)
	s.mockCompendium = compendiummock.NewMockClient(s.ctrl)

	orch, err := importer.NewOrchestrator(&importer.Config{
		ActorRepo:         s.mockRepo,
		Compendium:        s.mockCompendium,
		Roller:            &fixedRoller{value: 1},
		LookupConcurrency: 2,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectCreateActor stores the actor under testActorID and captures it
func (s *OrchestratorTestSuite) expectCreateActor(captured **schema.Actor) *gomock.Call {
	return s.mockRepo.EXPECT().
		CreateActor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input actor.CreateActorInput) (*actor.CreateActorOutput, error) {
			stored := *input.Actor
			stored.ID = testActorID
			if captured != nil {
				*captured = &stored
			}
			return &actor.CreateActorOutput{Actor: &stored}, nil
		})
}

// storeAll assigns IDs and accepts every item of a batch
func storeAll(batches *[][]*schema.Item) func(context.Context, actor.CreateItemsInput) (*actor.CreateItemsOutput, error) {
	return func(_ context.Context, input actor.CreateItemsInput) (*actor.CreateItemsOutput, error) {
		if batches != nil {
			*batches = append(*batches, input.Items)
		}
		out := &actor.CreateItemsOutput{}
		for _, item := range input.Items {
			stored := *item
			stored.ActorID = input.ActorID
			out.Items = append(out.Items, &stored)
		}
		return out, nil
	}
}

func (s *OrchestratorTestSuite) TestImportGoblin() {
	var stored *schema.Actor
	var batches [][]*schema.Item

	gomock.InOrder(
		s.expectCreateActor(&stored),
		s.mockRepo.EXPECT().
			CreateItems(gomock.Any(), gomock.Any()).
			DoAndReturn(storeAll(&batches)),
	)

	output, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.GoblinStatBlock})
	s.Require().NoError(err)

	s.Equal(testActorID, output.ActorID)
	s.Equal("Goblin", stored.Name)
	s.Equal(7, stored.Data.Attributes.HP.Value)
	s.Len(output.Items, 3)
	s.Empty(output.ItemFailures)
	s.Empty(output.Warnings)
	s.Require().Len(batches, 1)
	for _, item := range output.Items {
		s.Equal(testActorID, item.ActorID)
	}
}

func (s *OrchestratorTestSuite) TestImportLooksUpSpellsAfterItems() {
	var batches [][]*schema.Item

	gomock.InOrder(
		s.expectCreateActor(nil),
		s.mockRepo.EXPECT().
			CreateItems(gomock.Any(), gomock.Any()).
			DoAndReturn(storeAll(&batches)),
		s.mockRepo.EXPECT().
			CreateItems(gomock.Any(), gomock.Any()).
			DoAndReturn(storeAll(&batches)),
	)

	s.mockCompendium.EXPECT().
		LookupSpell(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*compendium.Spell, error) {
			if name == "fly" {
				return nil, errors.NotFoundf("spell %q not found", name).WithMeta("suggestion", "Fly")
			}
			if name == "shield" {
				return nil, errors.Unavailable("compendium down")
			}
			return &compendium.Spell{Key: name, Name: name, Level: 1}, nil
		}).
		Times(16)

	output, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.MageStatBlock})
	s.Require().NoError(err)

	s.Require().Len(batches, 2)
	s.Len(batches[0], 2)
	s.Require().Len(batches[1], 14)
	s.Equal("fire bolt", batches[1][0].Name)
	s.Equal("cone of cold", batches[1][13].Name)
	for _, item := range batches[1] {
		s.Equal(schema.ItemTypeSpell, item.Type)
	}

	s.Len(output.Items, 16)
	s.Equal([]string{
		`spell "shield" could not be looked up: compendium down`,
		`spell "fly" not found in compendium (did you mean "Fly"?)`,
	}, output.Warnings)
}

func (s *OrchestratorTestSuite) TestImportMalformed() {
	_, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.MalformedStatBlock})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Import(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestImportActorFailureAborts() {
	s.mockRepo.EXPECT().
		CreateActor(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.GoblinStatBlock})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestImportReportsItemFailures() {
	s.expectCreateActor(nil)
	s.mockRepo.EXPECT().
		CreateItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input actor.CreateItemsInput) (*actor.CreateItemsOutput, error) {
			return &actor.CreateItemsOutput{
				Items: input.Items[:2],
				Failures: []actor.ItemFailure{
					{Index: 2, Name: input.Items[2].Name, Err: errors.Internal("rejected")},
				},
			}, nil
		})

	output, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.GoblinStatBlock})
	s.Require().NoError(err)
	s.Len(output.Items, 2)
	s.Require().Len(output.ItemFailures, 1)
	s.Equal("Shortbow", output.ItemFailures[0].Name)
}

func (s *OrchestratorTestSuite) TestImportBatchFailureFailsEveryItem() {
	s.expectCreateActor(nil)
	s.mockRepo.EXPECT().
		CreateItems(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("pipeline failed"))

	output, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{Text: testutils.GoblinStatBlock})
	s.Require().NoError(err)
	s.Empty(output.Items)
	s.Len(output.ItemFailures, 3)
}

func (s *OrchestratorTestSuite) TestImportCanceledDuringLookups() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.expectCreateActor(nil)
	s.mockRepo.EXPECT().
		CreateItems(gomock.Any(), gomock.Any()).
		DoAndReturn(storeAll(nil))
	s.mockCompendium.EXPECT().
		LookupSpell(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) (*compendium.Spell, error) {
			cancel()
			return nil, context.Canceled
		}).
		MinTimes(1).
		MaxTimes(16)

	output, err := s.orchestrator.Import(ctx, &importer.ImportInput{Text: testutils.MageStatBlock})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.True(stderrors.Is(err, context.Canceled))

	s.Require().NotNil(output)
	s.Equal(testActorID, output.ActorID)
	s.NotEmpty(output.Items)
}

func (s *OrchestratorTestSuite) TestImportRollsHitPoints() {
	var stored *schema.Actor
	s.expectCreateActor(&stored)
	s.mockRepo.EXPECT().
		CreateItems(gomock.Any(), gomock.Any()).
		DoAndReturn(storeAll(nil))

	_, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{
		Text:          testutils.GoblinStatBlock,
		RollHitPoints: true,
	})
	s.Require().NoError(err)
	s.Equal(schema.HitPoints{Value: 2, Max: 2, Formula: "2d6"}, stored.Data.Attributes.HP)
}

func (s *OrchestratorTestSuite) TestImportRollWithoutFormulaWarns() {
	s.expectCreateActor(nil)

	output, err := s.orchestrator.Import(s.ctx, &importer.ImportInput{
		Text:          "> ## Blob\n>|10 (+0)|10 (+0)|10 (+0)|10 (+0)|10 (+0)|10 (+0)|\n",
		RollHitPoints: true,
	})
	s.Require().NoError(err)
	s.Len(output.Warnings, 1)
	s.Empty(output.Items)
}

func (s *OrchestratorTestSuite) TestPreview() {
	output, err := s.orchestrator.Preview(s.ctx, &importer.PreviewInput{Text: testutils.GnomeStatBlock})
	s.Require().NoError(err)

	s.Equal("Svirfneblin Seer", output.Actor.Name)
	s.Equal(2, output.Proficiency)
	s.ElementsMatch([]string{"nondetection", "blindness/deafness", "blur", "disguise self"}, output.SpellNames)
	s.Equal([]string{`ability "Stone Camouflage" appears more than once; the last entry was kept`}, output.Warnings)
	s.NotEmpty(output.Items)
}

func (s *OrchestratorTestSuite) TestPreviewUsesMapper() {
	mockMapper := conversionmock.NewMockMapper(s.ctrl)
	orch, err := importer.NewOrchestrator(&importer.Config{
		ActorRepo:  s.mockRepo,
		Compendium: s.mockCompendium,
		Mapper:     mockMapper,
	})
	s.Require().NoError(err)

	mockMapper.EXPECT().ToActor(gomock.Any(), 2).Return(&schema.Actor{Name: "mapped"})
	mockMapper.EXPECT().ToItems(gomock.Any()).Return(nil)

	output, err := orch.Preview(s.ctx, &importer.PreviewInput{Text: testutils.GoblinStatBlock})
	s.Require().NoError(err)
	s.Equal("mapped", output.Actor.Name)
}

func (s *OrchestratorTestSuite) TestShow() {
	s.mockRepo.EXPECT().
		GetActor(s.ctx, actor.GetActorInput{ID: testActorID}).
		Return(&actor.GetActorOutput{Actor: &schema.Actor{ID: testActorID, Name: "Goblin"}}, nil)
	s.mockRepo.EXPECT().
		ListItems(s.ctx, actor.ListItemsInput{ActorID: testActorID}).
		Return(&actor.ListItemsOutput{Items: []*schema.Item{{Name: "Scimitar"}}}, nil)

	output, err := s.orchestrator.Show(s.ctx, &importer.ShowInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Equal("Goblin", output.Actor.Name)
	s.Len(output.Items, 1)

	s.mockRepo.EXPECT().
		GetActor(s.ctx, actor.GetActorInput{ID: "actor_404"}).
		Return(nil, errors.NotFound("actor not found"))
	_, err = s.orchestrator.Show(s.ctx, &importer.ShowInput{ActorID: "actor_404"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.Show(s.ctx, &importer.ShowInput{ActorID: "item_3"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := importer.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = importer.NewOrchestrator(&importer.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
