package recipe

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/domain/nutrition"
	"github.com/kondate-ai/kondate/internal/infrastructure/persistence/memory"
	"github.com/kondate-ai/kondate/internal/ports/inbound"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
	"github.com/kondate-ai/kondate/pkg/errors"
	"github.com/kondate-ai/kondate/test/testutils"
)

type GenerateServiceTestSuite struct {
	suite.Suite
	aiService *testutils.MockAIService
	events    *testutils.MockEventPublisher
	service   inbound.RecipeService
	log       outbound.RecipeLog
	ctx       context.Context
}

func (suite *GenerateServiceTestSuite) SetupTest() {
	suite.aiService = new(testutils.MockAIService)
	suite.events = new(testutils.MockEventPublisher)
	suite.service = NewGenerateService(
		suite.aiService,
		nutrition.NewExtractor(nil),
		suite.events,
		zap.NewNop(),
	)
	suite.log = memory.NewRecipeLog()
	suite.ctx = context.Background()
}

func (suite *GenerateServiceTestSuite) command() inbound.GenerateCommand {
	return inbound.GenerateCommand{
		Ingredients: "鶏むね肉, トマト",
		Genre:       "洋食",
		Purpose:     "ヘルシー",
		CookingTime: 30,
		Allergies:   "",
	}
}

func (suite *GenerateServiceTestSuite) TestGenerateSuccess() {
	text := testutils.NewRecipeTextBuilder().
		WithName("鶏むね肉のトマト煮込み").
		WithNutrition(350, 20, 10.5, 45).
		WithFullWidthColons().
		Build()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.AnythingOfType("string")).Return(text, nil)
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()

	dto, err := suite.service.Generate(suite.ctx, suite.log, suite.command())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "鶏むね肉のトマト煮込み", dto.Name)
	assert.Equal(suite.T(), 350.0, dto.Nutrition.Calories)
	assert.Equal(suite.T(), 20.0, dto.Nutrition.Protein)
	assert.Equal(suite.T(), 10.5, dto.Nutrition.Fat)
	assert.Equal(suite.T(), 45.0, dto.Nutrition.Carbs)

	// One record and one matching ledger row per success.
	records := suite.log.Records()
	rows := suite.log.LedgerRows()
	require.Len(suite.T(), records, 1)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), records[0].Name(), rows[0].Name)

	suite.aiService.AssertExpectations(suite.T())
	suite.events.AssertExpectations(suite.T())
}

func (suite *GenerateServiceTestSuite) TestGeneratePassesPromptWithWishes() {
	var captured string
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		captured = prompt
		return true
	})).Return("レシピ名：x", nil)
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()

	_, err := suite.service.Generate(suite.ctx, suite.log, suite.command())

	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), captured, "使いたい食材：鶏むね肉, トマト")
	assert.Contains(suite.T(), captured, "調理時間は30分以内")
}

func (suite *GenerateServiceTestSuite) TestGenerateEmptyIngredientsRejected() {
	cmd := suite.command()
	cmd.Ingredients = "  ,、 \n "

	dto, err := suite.service.Generate(suite.ctx, suite.log, cmd)

	assert.Nil(suite.T(), dto)
	assert.True(suite.T(), errors.Is(err, errors.CodeEmptyIngredients))
	assert.Empty(suite.T(), suite.log.Records())

	// Rejected before any collaborator call.
	suite.aiService.AssertNotCalled(suite.T(), "GenerateRecipe", mock.Anything, mock.Anything)
}

func (suite *GenerateServiceTestSuite) TestGenerateCollaboratorFailure() {
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return("", stderrors.New("rate limited"))

	dto, err := suite.service.Generate(suite.ctx, suite.log, suite.command())

	assert.Nil(suite.T(), dto)
	assert.True(suite.T(), errors.Is(err, errors.CodeExternalServiceError))

	// A failed exchange leaves the log untouched.
	assert.Empty(suite.T(), suite.log.Records())
	assert.Empty(suite.T(), suite.log.LedgerRows())
	suite.events.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *GenerateServiceTestSuite) TestGenerateUnlabeledResponseStillRecorded() {
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return("栄養情報のない自由形式の回答です。", nil)
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()

	dto, err := suite.service.Generate(suite.ctx, suite.log, suite.command())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "不明なレシピ", dto.Name)
	assert.Equal(suite.T(), 0.0, dto.Nutrition.Calories)
	require.Len(suite.T(), suite.log.LedgerRows(), 1)
}

func (suite *GenerateServiceTestSuite) TestHistoryNewestFirst() {
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return("レシピ名：一品目", nil).Once()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return("レシピ名：二品目", nil).Once()

	_, err := suite.service.Generate(suite.ctx, suite.log, suite.command())
	require.NoError(suite.T(), err)
	_, err = suite.service.Generate(suite.ctx, suite.log, suite.command())
	require.NoError(suite.T(), err)

	history := suite.service.History(suite.log)

	require.Len(suite.T(), history, 2)
	assert.Equal(suite.T(), "二品目", history[0].Name)
	assert.Equal(suite.T(), "一品目", history[1].Name)
}

func (suite *GenerateServiceTestSuite) TestSummary() {
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return(testutils.NewRecipeTextBuilder().WithNutrition(300, 15, 8, 40).Build(), nil).Once()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).
		Return(testutils.NewRecipeTextBuilder().WithNutrition(450, 25, 12, 55).Build(), nil).Once()

	_, err := suite.service.Generate(suite.ctx, suite.log, suite.command())
	require.NoError(suite.T(), err)
	_, err = suite.service.Generate(suite.ctx, suite.log, suite.command())
	require.NoError(suite.T(), err)

	summary := suite.service.Summary(suite.log)

	require.Len(suite.T(), summary.Daily, 1)
	assert.Equal(suite.T(), 750.0, summary.Daily[0].Calories)
	assert.Equal(suite.T(), 40.0, summary.Totals.Protein)
	assert.Equal(suite.T(), 20.0, summary.Totals.Fat)
	assert.Equal(suite.T(), 95.0, summary.Totals.Carbs)
}

func (suite *GenerateServiceTestSuite) TestExportCSV() {
	suite.events.On("Publish", mock.Anything, mock.Anything).Return()
	text := testutils.NewRecipeTextBuilder().
		WithName("肉じゃが").
		WithNutrition(350, 20, 10.5, 45).
		Build()
	suite.aiService.On("GenerateRecipe", mock.Anything, mock.Anything).Return(text, nil)

	_, err := suite.service.Generate(suite.ctx, suite.log, suite.command())
	require.NoError(suite.T(), err)

	data, err := suite.service.ExportCSV(suite.log)
	require.NoError(suite.T(), err)

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), parsed, 2)
	assert.Equal(suite.T(), []string{"date", "recipe_name", "calories_kcal", "protein_g", "fat_g", "carbs_g"}, parsed[0])
	assert.Equal(suite.T(), "肉じゃが", parsed[1][1])
	assert.Equal(suite.T(), "350", parsed[1][2])
	assert.Equal(suite.T(), "10.5", parsed[1][4])
}

func (suite *GenerateServiceTestSuite) TestExportCSVEmptyLedger() {
	data, err := suite.service.ExportCSV(suite.log)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "date,recipe_name,calories_kcal,protein_g,fat_g,carbs_g\n", string(data))
	assert.Equal(suite.T(), 1, strings.Count(string(data), "\n"))
}

func TestGenerateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenerateServiceTestSuite))
}
