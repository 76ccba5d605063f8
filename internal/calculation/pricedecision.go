package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputePriceDecision compares operating profit before and after a price change,
// given the expected change in sales volume.
func (e *Engine) ComputePriceDecision(in domain.PriceDecisionInput) domain.PriceDecisionResult {
	in = sanitizePriceDecision(in)

	projected := maxZero(in.CurrentQuantity.Mul(one.Add(in.QuantityChangePercent.Div(hundred))))
	cmCurrent := in.CurrentPrice.Sub(in.VariableCostPerUnit)
	cmNew := in.NewPrice.Sub(in.VariableCostPerUnit)

	res := domain.PriceDecisionResult{
		Input:              in,
		ProjectedQuantity:  projected,
		CurrentUnitMargin:  cmCurrent,
		NewUnitMargin:      cmNew,
		CurrentTotalMargin: cmCurrent.Mul(in.CurrentQuantity),
		NewTotalMargin:     cmNew.Mul(projected),
	}
	res.CurrentOperatingProfit = res.CurrentTotalMargin.Sub(in.FixedCost)
	res.NewOperatingProfit = res.NewTotalMargin.Sub(in.FixedCost)
	res.ProfitDelta = res.NewOperatingProfit.Sub(res.CurrentOperatingProfit)
	res.NewBreakEvenQuantity = domain.NewAmount(in.FixedCost).Div(cmNew)
	res.BreakEvenQuantityChangePercent = BreakEvenQuantityChangePercent(res.CurrentTotalMargin, cmNew, in.CurrentQuantity)
	res.Recommendation = recommend(in, res.ProfitDelta, cmNew)

	if !res.NewBreakEvenQuantity.IsDefined() {
		e.Logger.Debugf("price decision: new unit margin %s is not positive", cmNew)
	}
	return res
}

// BreakEvenQuantityChangePercent is the volume change, in percent, at which the new
// unit margin earns the same total margin as today. It is undefined when the new
// margin is not positive or there is no current volume.
func BreakEvenQuantityChangePercent(currentTotalMargin, newUnitMargin, currentQuantity decimal.Decimal) domain.Amount {
	if currentQuantity.LessThanOrEqual(decimal.Zero) {
		return domain.Undefined()
	}
	required := domain.NewAmount(currentTotalMargin).Div(newUnitMargin)
	if !required.IsDefined() {
		return required
	}
	return domain.NewAmount(required.Value.Div(currentQuantity).Sub(one).Mul(hundred))
}

func recommend(in domain.PriceDecisionInput, delta, cmNew decimal.Decimal) domain.Recommendation {
	rec := domain.Recommendation{Direction: domain.PriceUnchanged, Verdict: domain.VerdictNeutral}
	switch in.NewPrice.Cmp(in.CurrentPrice) {
	case 1:
		rec.Direction = domain.PriceIncrease
	case -1:
		rec.Direction = domain.PriceDecrease
	}
	switch delta.Sign() {
	case 1:
		rec.Verdict = domain.VerdictImproves
	case -1:
		rec.Verdict = domain.VerdictWorsens
	}
	rec.Message = recommendationMessages[rec.Direction][rec.Verdict]
	if cmNew.LessThanOrEqual(decimal.Zero) {
		rec.LossWarning = "새 가격이 단위당 변동비 이하입니다. 많이 팔수록 손실이 커집니다."
	}
	return rec
}

var recommendationMessages = map[domain.PriceDirection]map[domain.Verdict]string{
	domain.PriceIncrease: {
		domain.VerdictImproves: "가격을 올려도 판매량 감소를 감안한 이익이 늘어납니다. 인상을 검토할 만합니다.",
		domain.VerdictWorsens:  "가격 인상에 따른 판매량 감소가 커서 이익이 줄어듭니다. 인상 폭을 다시 검토하세요.",
		domain.VerdictNeutral:  "가격 인상 전후 이익이 같습니다.",
	},
	domain.PriceDecrease: {
		domain.VerdictImproves: "가격 인하로 늘어난 판매량이 마진 감소를 메워 이익이 늘어납니다.",
		domain.VerdictWorsens:  "가격 인하로 줄어든 마진을 판매량 증가가 메우지 못해 이익이 줄어듭니다.",
		domain.VerdictNeutral:  "가격 인하 전후 이익이 같습니다.",
	},
	domain.PriceUnchanged: {
		domain.VerdictImproves: "가격은 그대로이며 판매량 변화만으로 이익이 늘어납니다.",
		domain.VerdictWorsens:  "가격은 그대로이며 판매량 변화만으로 이익이 줄어듭니다.",
		domain.VerdictNeutral:  "가격과 이익 모두 변화가 없습니다.",
	},
}
