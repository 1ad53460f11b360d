package indicator

const (
	sma  = "simple_moving_average"
	smma = "smoothed_moving_average"
	ema  = "exponential_moving_average"
	std  = "standard_deviation"
	mad  = "mean_absolute_deviation"
)

func intP(name, def string) Param   { return Param{Name: name, Kind: IntParam, Default: def} }
func floatP(name, def string) Param { return Param{Name: name, Kind: FloatParam, Default: def} }
func tokenP(name, def string) Param { return Param{Name: name, Kind: TokenParam, Default: def} }
func periodP(def string) Param      { return intP("period", def) }
func modelP(def string) Param       { return tokenP("constant_model_type", def) }
func deviationP(def string) Param   { return tokenP("deviation_model", def) }

func roles(r ...string) []string { return r }

func params(p ...Param) []Param { return p }

var (
	prices = roles("prices")
	hl     = roles("high", "low")
	hlc    = roles("high", "low", "close")
	chl    = roles("close", "high", "low")
	hlcv   = roles("high", "low", "close", "volume")
	ohlc   = roles("open", "high", "low", "close")
)

var catalog = []Entry{
	// basic
	{Name: "mean_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(MeanSingle(a.prices()))
	}},
	{Name: "median_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(MedianSingle(a.prices()))
	}},
	{Name: "mode_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(ModeSingle(a.prices()))
	}},
	{Name: "variance_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(VarianceSingle(a.prices()))
	}},
	{Name: "standard_deviation_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(StandardDeviationSingle(a.prices()))
	}},
	{Name: "max_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(MaxSingle(a.prices()))
	}},
	{Name: "min_single", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(MinSingle(a.prices()))
	}},
	{Name: "absolute_deviation_single", Family: "basic", Inputs: prices, Params: params(tokenP("central_point", "mean")), invoke: func(a *args) (Result, error) {
		return scalar(AbsoluteDeviationSingle(a.prices(), a.token("central_point")))
	}},
	{Name: "log_difference_single", Family: "basic", Params: params(floatP("price_t", ""), floatP("price_t_1", "")), invoke: func(a *args) (Result, error) {
		return value(LogDifferenceSingle(a.float("price_t"), a.float("price_t_1")))
	}},
	{Name: "mean_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(MeanBulk(a.prices(), a.period()))
	}},
	{Name: "median_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(MedianBulk(a.prices(), a.period()))
	}},
	{Name: "mode_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(ModeBulk(a.prices(), a.period()))
	}},
	{Name: "variance_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(VarianceBulk(a.prices(), a.period()))
	}},
	{Name: "standard_deviation_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(StandardDeviationBulk(a.prices(), a.period()))
	}},
	{Name: "absolute_deviation_bulk", Family: "basic", Inputs: prices, Params: params(periodP("14"), tokenP("central_point", "mean")), invoke: func(a *args) (Result, error) {
		return series(AbsoluteDeviationBulk(a.prices(), a.period(), a.token("central_point")))
	}},
	{Name: "log_bulk", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return series(LogBulk(a.prices()))
	}},
	{Name: "log_difference_bulk", Family: "basic", Inputs: prices, invoke: func(a *args) (Result, error) {
		return series(LogDifferenceBulk(a.prices()))
	}},

	// standard
	{Name: "sma_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(SmaSingle(a.prices()))
	}},
	{Name: "smma_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(SmmaSingle(a.prices()))
	}},
	{Name: "ema_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(EmaSingle(a.prices()))
	}},
	{Name: "sma_bulk", Family: "standard", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(SmaBulk(a.prices(), a.period()))
	}},
	{Name: "smma_bulk", Family: "standard", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(SmmaBulk(a.prices(), a.period()))
	}},
	{Name: "ema_bulk", Family: "standard", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(EmaBulk(a.prices(), a.period()))
	}},
	{Name: "bollinger_bands_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return bands(BollingerBandsSingle(a.prices()))
	}},
	{Name: "bollinger_bands_bulk", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return table(BollingerBandsBulk(a.prices()))
	}},
	{Name: "macd_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		m, err := MacdSingle(a.prices())
		if err != nil {
			return Result{}, err
		}
		return tuple([]string{"macd", "signal", "histogram"}, m.Macd, m.Signal, m.Histogram), nil
	}},
	{Name: "macd_bulk", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return table(MacdBulk(a.prices()))
	}},
	{Name: "rsi_single", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(RsiSingle(a.prices()))
	}},
	{Name: "rsi_bulk", Family: "standard", Inputs: prices, invoke: func(a *args) (Result, error) {
		return series(RsiBulk(a.prices()))
	}},

	// moving average
	{Name: "moving_average_single", Family: "moving_average", Inputs: prices, Params: params(tokenP("moving_average_type", "simple")), invoke: func(a *args) (Result, error) {
		return scalar(MovingAverageSingle(a.prices(), a.token("moving_average_type")))
	}},
	{Name: "moving_average_bulk", Family: "moving_average", Inputs: prices, Params: params(tokenP("moving_average_type", "simple"), periodP("14")), invoke: func(a *args) (Result, error) {
		return series(MovingAverageBulk(a.prices(), a.token("moving_average_type"), a.period()))
	}},
	{Name: "mcginley_dynamic_single", Family: "moving_average", Inputs: prices, Params: params(floatP("previous", "0"), periodP("14")), invoke: func(a *args) (Result, error) {
		return scalar(McginleyDynamicSingle(a.prices(), a.float("previous"), a.period()))
	}},
	{Name: "mcginley_dynamic_bulk", Family: "moving_average", Inputs: prices, Params: params(floatP("previous", "0"), periodP("14")), invoke: func(a *args) (Result, error) {
		return series(McginleyDynamicBulk(a.prices(), a.float("previous"), a.period()))
	}},
	{Name: "personalised_moving_average_single", Family: "moving_average", Inputs: prices, Params: params(floatP("alpha_num", "2"), floatP("alpha_den", "1")), invoke: func(a *args) (Result, error) {
		return scalar(PersonalisedMovingAverageSingle(a.prices(), a.float("alpha_num"), a.float("alpha_den")))
	}},
	{Name: "personalised_moving_average_bulk", Family: "moving_average", Inputs: prices, Params: params(floatP("alpha_num", "2"), floatP("alpha_den", "1"), periodP("14")), invoke: func(a *args) (Result, error) {
		return series(PersonalisedMovingAverageBulk(a.prices(), a.float("alpha_num"), a.float("alpha_den"), a.period()))
	}},

	// momentum
	{Name: "relative_strength_index_single", Family: "momentum", Inputs: prices, Params: params(modelP(smma)), invoke: func(a *args) (Result, error) {
		return scalar(RelativeStrengthIndexSingle(a.prices(), a.model()))
	}},
	{Name: "relative_strength_index_bulk", Family: "momentum", Inputs: prices, Params: params(modelP(smma), periodP("14")), invoke: func(a *args) (Result, error) {
		return series(RelativeStrengthIndexBulk(a.prices(), a.model(), a.period()))
	}},
	{Name: "stochastic_oscillator_single", Family: "momentum", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(StochasticOscillatorSingle(a.prices()))
	}},
	{Name: "stochastic_oscillator_bulk", Family: "momentum", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(StochasticOscillatorBulk(a.prices(), a.period()))
	}},
	{Name: "full_stochastic_bulk", Family: "momentum", Inputs: hlc, Params: params(intP("period_k", "14"), intP("smooth_k", "1"), intP("period_d", "3")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return table(FullStochasticBulk(h, l, c, a.int("period_k"), a.int("smooth_k"), a.int("period_d")))
	}},
	{Name: "slow_stochastic_single", Family: "momentum", Inputs: roles("stochastics"), Params: params(modelP(sma)), invoke: func(a *args) (Result, error) {
		return scalar(SlowStochasticSingle(a.input("stochastics"), a.model()))
	}},
	{Name: "slow_stochastic_bulk", Family: "momentum", Inputs: roles("stochastics"), Params: params(modelP(sma), periodP("3")), invoke: func(a *args) (Result, error) {
		return series(SlowStochasticBulk(a.input("stochastics"), a.model(), a.period()))
	}},
	{Name: "slowest_stochastic_single", Family: "momentum", Inputs: roles("slow_stochastics"), Params: params(modelP(sma)), invoke: func(a *args) (Result, error) {
		return scalar(SlowestStochasticSingle(a.input("slow_stochastics"), a.model()))
	}},
	{Name: "slowest_stochastic_bulk", Family: "momentum", Inputs: roles("slow_stochastics"), Params: params(modelP(sma), periodP("3")), invoke: func(a *args) (Result, error) {
		return series(SlowestStochasticBulk(a.input("slow_stochastics"), a.model(), a.period()))
	}},
	{Name: "williams_percent_r_single", Family: "momentum", Inputs: hl, Params: params(floatP("close", "")), invoke: func(a *args) (Result, error) {
		return scalar(WilliamsPercentRSingle(a.input("high"), a.input("low"), a.float("close")))
	}},
	{Name: "williams_percent_r_bulk", Family: "momentum", Inputs: hlc, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(WilliamsPercentRBulk(h, l, c, a.period()))
	}},
	{Name: "money_flow_index_single", Family: "momentum", Inputs: roles("prices", "volume"), invoke: func(a *args) (Result, error) {
		return scalar(MoneyFlowIndexSingle(a.prices(), a.input("volume")))
	}},
	{Name: "money_flow_index_bulk", Family: "momentum", Inputs: roles("prices", "volume"), Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(MoneyFlowIndexBulk(a.prices(), a.input("volume"), a.period()))
	}},
	{Name: "rate_of_change_single", Family: "momentum", Params: params(floatP("current", ""), floatP("previous", "")), invoke: func(a *args) (Result, error) {
		return value(RateOfChangeSingle(a.float("current"), a.float("previous")))
	}},
	{Name: "rate_of_change_bulk", Family: "momentum", Inputs: prices, invoke: func(a *args) (Result, error) {
		return series(RateOfChangeBulk(a.prices()))
	}},
	{Name: "on_balance_volume_single", Family: "momentum", Params: params(floatP("current", ""), floatP("previous", ""), floatP("volume", ""), floatP("previous_obv", "0")), invoke: func(a *args) (Result, error) {
		return value(OnBalanceVolumeSingle(a.float("current"), a.float("previous"), a.float("volume"), a.float("previous_obv")))
	}},
	{Name: "on_balance_volume_bulk", Family: "momentum", Inputs: roles("prices", "volume"), Params: params(floatP("previous_obv", "0")), invoke: func(a *args) (Result, error) {
		return series(OnBalanceVolumeBulk(a.prices(), a.input("volume"), a.float("previous_obv")))
	}},
	{Name: "commodity_channel_index_single", Family: "momentum", Inputs: prices, Params: params(modelP(sma), deviationP(mad), floatP("multiplier", "0.015")), invoke: func(a *args) (Result, error) {
		return scalar(CommodityChannelIndexSingle(a.prices(), a.model(), a.deviation(), a.float("multiplier")))
	}},
	{Name: "commodity_channel_index_bulk", Family: "momentum", Inputs: prices, Params: params(modelP(sma), deviationP(mad), floatP("multiplier", "0.015"), periodP("20")), invoke: func(a *args) (Result, error) {
		return series(CommodityChannelIndexBulk(a.prices(), a.model(), a.deviation(), a.float("multiplier"), a.period()))
	}},
	{Name: "mcginley_dynamic_commodity_channel_index_single", Family: "momentum", Inputs: prices, Params: params(floatP("previous", "0"), deviationP(mad), floatP("multiplier", "0.015")), invoke: func(a *args) (Result, error) {
		r, err := McginleyDynamicCommodityChannelIndexSingle(a.prices(), a.float("previous"), a.deviation(), a.float("multiplier"))
		if err != nil {
			return Result{}, err
		}
		return tuple([]string{"cci", "mcginley_dynamic"}, r.CommodityChannelIndex, r.McginleyDynamic), nil
	}},
	{Name: "mcginley_dynamic_commodity_channel_index_bulk", Family: "momentum", Inputs: prices, Params: params(floatP("previous", "0"), deviationP(mad), floatP("multiplier", "0.015"), periodP("20")), invoke: func(a *args) (Result, error) {
		return table(McginleyDynamicCommodityChannelIndexBulk(a.prices(), a.float("previous"), a.deviation(), a.float("multiplier"), a.period()))
	}},
	{Name: "macd_line_single", Family: "momentum", Inputs: prices, Params: params(intP("short_period", "12"), tokenP("short_model", ema), intP("long_period", "26"), tokenP("long_model", ema)), invoke: func(a *args) (Result, error) {
		return scalar(MacdLineSingle(a.prices(), a.int("short_period"), a.token("short_model"), a.int("long_period"), a.token("long_model")))
	}},
	{Name: "macd_line_bulk", Family: "momentum", Inputs: prices, Params: params(intP("short_period", "12"), tokenP("short_model", ema), intP("long_period", "26"), tokenP("long_model", ema)), invoke: func(a *args) (Result, error) {
		return series(MacdLineBulk(a.prices(), a.int("short_period"), a.token("short_model"), a.int("long_period"), a.token("long_model")))
	}},
	{Name: "signal_line_single", Family: "momentum", Inputs: roles("macds"), Params: params(modelP(ema)), invoke: func(a *args) (Result, error) {
		return scalar(SignalLineSingle(a.input("macds"), a.model()))
	}},
	{Name: "signal_line_bulk", Family: "momentum", Inputs: roles("macds"), Params: params(modelP(ema), periodP("9")), invoke: func(a *args) (Result, error) {
		return series(SignalLineBulk(a.input("macds"), a.model(), a.period()))
	}},
	{Name: "mcginley_dynamic_macd_line_bulk", Family: "momentum", Inputs: prices, Params: params(intP("short_period", "12"), floatP("previous_short", "0"), intP("long_period", "26"), floatP("previous_long", "0")), invoke: func(a *args) (Result, error) {
		return table(McginleyDynamicMacdLineBulk(a.prices(), a.int("short_period"), a.float("previous_short"), a.int("long_period"), a.float("previous_long")))
	}},
	{Name: "chaikin_oscillator_bulk", Family: "momentum", Inputs: hlcv, Params: params(intP("short_period", "3"), intP("long_period", "10"), floatP("previous", "0"), tokenP("short_model", ema), tokenP("long_model", ema)), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return table(ChaikinOscillatorBulk(h, l, c, a.input("volume"), a.int("short_period"), a.int("long_period"), a.float("previous"), a.token("short_model"), a.token("long_model")))
	}},
	{Name: "percentage_price_oscillator_single", Family: "momentum", Inputs: prices, Params: params(intP("short_period", "12"), intP("long_period", "26"), modelP(ema)), invoke: func(a *args) (Result, error) {
		return scalar(PercentagePriceOscillatorSingle(a.prices(), a.int("short_period"), a.int("long_period"), a.model()))
	}},
	{Name: "percentage_price_oscillator_bulk", Family: "momentum", Inputs: prices, Params: params(intP("short_period", "12"), intP("long_period", "26"), modelP(ema)), invoke: func(a *args) (Result, error) {
		return series(PercentagePriceOscillatorBulk(a.prices(), a.int("short_period"), a.int("long_period"), a.model()))
	}},
	{Name: "chande_momentum_oscillator_single", Family: "momentum", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(ChandeMomentumOscillatorSingle(a.prices()))
	}},
	{Name: "chande_momentum_oscillator_bulk", Family: "momentum", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(ChandeMomentumOscillatorBulk(a.prices(), a.period()))
	}},

	// trend
	{Name: "aroon_up_single", Family: "trend", Inputs: roles("high"), invoke: func(a *args) (Result, error) {
		return scalar(AroonUpSingle(a.input("high")))
	}},
	{Name: "aroon_down_single", Family: "trend", Inputs: roles("low"), invoke: func(a *args) (Result, error) {
		return scalar(AroonDownSingle(a.input("low")))
	}},
	{Name: "aroon_oscillator_single", Family: "trend", Params: params(floatP("aroon_up", ""), floatP("aroon_down", "")), invoke: func(a *args) (Result, error) {
		return value(AroonOscillatorSingle(a.float("aroon_up"), a.float("aroon_down")))
	}},
	{Name: "aroon_indicator_single", Family: "trend", Inputs: hl, invoke: func(a *args) (Result, error) {
		r, err := AroonIndicatorSingle(a.input("high"), a.input("low"))
		if err != nil {
			return Result{}, err
		}
		return tuple([]string{"aroon_up", "aroon_down", "aroon_oscillator"}, r.Up, r.Down, r.Oscillator), nil
	}},
	{Name: "aroon_up_bulk", Family: "trend", Inputs: roles("high"), Params: params(periodP("25")), invoke: func(a *args) (Result, error) {
		return series(AroonUpBulk(a.input("high"), a.period()))
	}},
	{Name: "aroon_down_bulk", Family: "trend", Inputs: roles("low"), Params: params(periodP("25")), invoke: func(a *args) (Result, error) {
		return series(AroonDownBulk(a.input("low"), a.period()))
	}},
	{Name: "aroon_oscillator_bulk", Family: "trend", Inputs: roles("up", "down"), invoke: func(a *args) (Result, error) {
		return series(AroonOscillatorBulk(a.input("up"), a.input("down")))
	}},
	{Name: "aroon_indicator_bulk", Family: "trend", Inputs: hl, Params: params(periodP("25")), invoke: func(a *args) (Result, error) {
		return table(AroonIndicatorBulk(a.input("high"), a.input("low"), a.period()))
	}},
	{Name: "long_parabolic_time_price_system_single", Family: "trend", Params: params(floatP("previous_sar", ""), floatP("extreme_point", ""), floatP("acceleration_factor", "0.02"), floatP("low", "")), invoke: func(a *args) (Result, error) {
		return value(LongParabolicTimePriceSystemSingle(a.float("previous_sar"), a.float("extreme_point"), a.float("acceleration_factor"), a.float("low")))
	}},
	{Name: "short_parabolic_time_price_system_single", Family: "trend", Params: params(floatP("previous_sar", ""), floatP("extreme_point", ""), floatP("acceleration_factor", "0.02"), floatP("high", "")), invoke: func(a *args) (Result, error) {
		return value(ShortParabolicTimePriceSystemSingle(a.float("previous_sar"), a.float("extreme_point"), a.float("acceleration_factor"), a.float("high")))
	}},
	{Name: "parabolic_time_price_system_bulk", Family: "trend", Inputs: hl, Params: params(floatP("af_start", "0.02"), floatP("af_step", "0.02"), floatP("af_max", "0.2"), tokenP("position", "long"), floatP("previous_sar", "0")), invoke: func(a *args) (Result, error) {
		return series(ParabolicTimePriceSystemBulk(a.input("high"), a.input("low"), a.float("af_start"), a.float("af_step"), a.float("af_max"), a.token("position"), a.float("previous_sar")))
	}},
	{Name: "directional_movement_system_bulk", Family: "trend", Inputs: hlc, Params: params(periodP("14"), modelP(smma)), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return table(DirectionalMovementSystemBulk(h, l, c, a.period(), a.model()))
	}},
	{Name: "volume_price_trend_single", Family: "trend", Params: params(floatP("current", ""), floatP("previous", ""), floatP("volume", ""), floatP("previous_vpt", "0")), invoke: func(a *args) (Result, error) {
		return value(VolumePriceTrendSingle(a.float("current"), a.float("previous"), a.float("volume"), a.float("previous_vpt")))
	}},
	{Name: "volume_price_trend_bulk", Family: "trend", Inputs: roles("prices", "volume"), Params: params(floatP("previous_vpt", "0")), invoke: func(a *args) (Result, error) {
		return series(VolumePriceTrendBulk(a.prices(), a.input("volume"), a.float("previous_vpt")))
	}},
	{Name: "true_strength_index_single", Family: "trend", Inputs: prices, Params: params(tokenP("first_model", ema), intP("first_period", "25"), tokenP("second_model", ema)), invoke: func(a *args) (Result, error) {
		return scalar(TrueStrengthIndexSingle(a.prices(), a.token("first_model"), a.int("first_period"), a.token("second_model")))
	}},
	{Name: "true_strength_index_bulk", Family: "trend", Inputs: prices, Params: params(tokenP("first_model", ema), intP("first_period", "25"), tokenP("second_model", ema), intP("second_period", "13")), invoke: func(a *args) (Result, error) {
		return series(TrueStrengthIndexBulk(a.prices(), a.token("first_model"), a.int("first_period"), a.token("second_model"), a.int("second_period")))
	}},

	// strength
	{Name: "accumulation_distribution_single", Family: "strength", Params: params(floatP("high", ""), floatP("low", ""), floatP("close", ""), floatP("volume", ""), floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		return value(AccumulationDistributionSingle(a.float("high"), a.float("low"), a.float("close"), a.float("volume"), a.float("previous")))
	}},
	{Name: "accumulation_distribution_bulk", Family: "strength", Inputs: hlcv, Params: params(floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(AccumulationDistributionBulk(h, l, c, a.input("volume"), a.float("previous")))
	}},
	{Name: "volume_index_single", Family: "strength", Params: params(floatP("current", ""), floatP("previous", ""), floatP("previous_index", "0")), invoke: func(a *args) (Result, error) {
		return value(VolumeIndexSingle(a.float("current"), a.float("previous"), a.float("previous_index")))
	}},
	{Name: "positive_volume_index_bulk", Family: "strength", Inputs: roles("close", "volume"), Params: params(floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		return series(PositiveVolumeIndexBulk(a.input("close"), a.input("volume"), a.float("previous")))
	}},
	{Name: "negative_volume_index_bulk", Family: "strength", Inputs: roles("close", "volume"), Params: params(floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		return series(NegativeVolumeIndexBulk(a.input("close"), a.input("volume"), a.float("previous")))
	}},
	{Name: "relative_vigor_index_single", Family: "strength", Inputs: ohlc, Params: params(modelP(sma)), invoke: func(a *args) (Result, error) {
		return scalar(RelativeVigorIndexSingle(a.input("open"), a.input("high"), a.input("low"), a.input("close"), a.model()))
	}},
	{Name: "relative_vigor_index_bulk", Family: "strength", Inputs: ohlc, Params: params(modelP(sma), periodP("10")), invoke: func(a *args) (Result, error) {
		return series(RelativeVigorIndexBulk(a.input("open"), a.input("high"), a.input("low"), a.input("close"), a.model(), a.period()))
	}},

	// volatility
	{Name: "ulcer_index_single", Family: "volatility", Inputs: prices, invoke: func(a *args) (Result, error) {
		return scalar(UlcerIndexSingle(a.prices()))
	}},
	{Name: "ulcer_index_bulk", Family: "volatility", Inputs: prices, Params: params(periodP("14")), invoke: func(a *args) (Result, error) {
		return series(UlcerIndexBulk(a.prices(), a.period()))
	}},
	{Name: "volatility_system_bulk", Family: "volatility", Inputs: hlc, Params: params(periodP("7"), floatP("multiplier", "3"), modelP(smma)), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(VolatilitySystemBulk(h, l, c, a.period(), a.float("multiplier"), a.model()))
	}},

	// other
	{Name: "return_on_investment_single", Family: "other", Params: params(floatP("start_price", ""), floatP("end_price", ""), floatP("investment", "")), invoke: func(a *args) (Result, error) {
		r := ReturnOnInvestmentSingle(a.float("start_price"), a.float("end_price"), a.float("investment"))
		return tuple([]string{"final_investment_value", "percent_return"}, r.FinalValue, r.PercentReturn), nil
	}},
	{Name: "return_on_investment_bulk", Family: "other", Inputs: prices, Params: params(floatP("investment", "")), invoke: func(a *args) (Result, error) {
		return table(ReturnOnInvestmentBulk(a.prices(), a.float("investment")))
	}},
	{Name: "true_range_single", Family: "other", Params: params(floatP("close", ""), floatP("high", ""), floatP("low", "")), invoke: func(a *args) (Result, error) {
		return value(TrueRangeSingle(a.float("close"), a.float("high"), a.float("low")))
	}},
	{Name: "true_range_bulk", Family: "other", Inputs: chl, invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(TrueRangeBulk(c, h, l))
	}},
	{Name: "average_true_range_single", Family: "other", Inputs: chl, Params: params(modelP(smma)), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return scalar(AverageTrueRangeSingle(c, h, l, a.model()))
	}},
	{Name: "average_true_range_bulk", Family: "other", Inputs: chl, Params: params(modelP(smma), periodP("14")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(AverageTrueRangeBulk(c, h, l, a.model(), a.period()))
	}},
	{Name: "internal_bar_strength_single", Family: "other", Params: params(floatP("high", ""), floatP("low", ""), floatP("close", "")), invoke: func(a *args) (Result, error) {
		return value(InternalBarStrengthSingle(a.float("high"), a.float("low"), a.float("close")))
	}},
	{Name: "internal_bar_strength_bulk", Family: "other", Inputs: hlc, invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(InternalBarStrengthBulk(h, l, c))
	}},
	{Name: "positivity_indicator_bulk", Family: "other", Inputs: roles("open", "close"), Params: params(intP("signal_period", "5"), modelP(sma)), invoke: func(a *args) (Result, error) {
		return table(PositivityIndicatorBulk(a.input("open"), a.input("close"), a.int("signal_period"), a.model()))
	}},

	// candle
	{Name: "moving_constant_envelopes_single", Family: "candle", Inputs: prices, Params: params(modelP(sma), floatP("difference", "3")), invoke: func(a *args) (Result, error) {
		return bands(MovingConstantEnvelopesSingle(a.prices(), a.model(), a.float("difference")))
	}},
	{Name: "moving_constant_envelopes_bulk", Family: "candle", Inputs: prices, Params: params(modelP(sma), floatP("difference", "3"), periodP("20")), invoke: func(a *args) (Result, error) {
		return table(MovingConstantEnvelopesBulk(a.prices(), a.model(), a.float("difference"), a.period()))
	}},
	{Name: "mcginley_dynamic_envelopes_single", Family: "candle", Inputs: prices, Params: params(floatP("difference", "3"), floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		return bands(McginleyDynamicEnvelopesSingle(a.prices(), a.float("difference"), a.float("previous")))
	}},
	{Name: "mcginley_dynamic_envelopes_bulk", Family: "candle", Inputs: prices, Params: params(floatP("difference", "3"), floatP("previous", "0"), periodP("20")), invoke: func(a *args) (Result, error) {
		return table(McginleyDynamicEnvelopesBulk(a.prices(), a.float("difference"), a.float("previous"), a.period()))
	}},
	{Name: "moving_constant_bands_single", Family: "candle", Inputs: prices, Params: params(modelP(sma), deviationP(std), floatP("multiplier", "2")), invoke: func(a *args) (Result, error) {
		return bands(MovingConstantBandsSingle(a.prices(), a.model(), a.deviation(), a.float("multiplier")))
	}},
	{Name: "moving_constant_bands_bulk", Family: "candle", Inputs: prices, Params: params(modelP(sma), deviationP(std), floatP("multiplier", "2"), periodP("20")), invoke: func(a *args) (Result, error) {
		return table(MovingConstantBandsBulk(a.prices(), a.model(), a.deviation(), a.float("multiplier"), a.period()))
	}},
	{Name: "mcginley_dynamic_bands_single", Family: "candle", Inputs: prices, Params: params(deviationP(std), floatP("multiplier", "2"), floatP("previous", "0")), invoke: func(a *args) (Result, error) {
		return bands(McginleyDynamicBandsSingle(a.prices(), a.deviation(), a.float("multiplier"), a.float("previous")))
	}},
	{Name: "mcginley_dynamic_bands_bulk", Family: "candle", Inputs: prices, Params: params(deviationP(std), floatP("multiplier", "2"), floatP("previous", "0"), periodP("20")), invoke: func(a *args) (Result, error) {
		return table(McginleyDynamicBandsBulk(a.prices(), a.deviation(), a.float("multiplier"), a.float("previous"), a.period()))
	}},
	{Name: "ichimoku_cloud_single", Family: "candle", Inputs: hlc, Params: params(intP("conversion_period", "9"), intP("base_period", "26"), intP("span_b_period", "52")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		r, err := IchimokuCloudSingle(h, l, c, a.int("conversion_period"), a.int("base_period"), a.int("span_b_period"))
		if err != nil {
			return Result{}, err
		}
		return tuple(
			[]string{"leading_span_a", "leading_span_b", "base_line", "conversion_line", "lagged_price"},
			r.LeadingSpanA, r.LeadingSpanB, r.BaseLine, r.ConversionLine, r.LaggedPrice,
		), nil
	}},
	{Name: "ichimoku_cloud_bulk", Family: "candle", Inputs: hlc, Params: params(intP("conversion_period", "9"), intP("base_period", "26"), intP("span_b_period", "52")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return table(IchimokuCloudBulk(h, l, c, a.int("conversion_period"), a.int("base_period"), a.int("span_b_period")))
	}},
	{Name: "donchian_channels_single", Family: "candle", Inputs: hl, invoke: func(a *args) (Result, error) {
		return bands(DonchianChannelsSingle(a.input("high"), a.input("low")))
	}},
	{Name: "donchian_channels_bulk", Family: "candle", Inputs: hl, Params: params(periodP("20")), invoke: func(a *args) (Result, error) {
		return table(DonchianChannelsBulk(a.input("high"), a.input("low"), a.period()))
	}},
	{Name: "keltner_channel_single", Family: "candle", Inputs: hlc, Params: params(modelP(ema), tokenP("atr_model_type", sma), floatP("multiplier", "2")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return bands(KeltnerChannelSingle(h, l, c, a.model(), a.token("atr_model_type"), a.float("multiplier")))
	}},
	{Name: "keltner_channel_bulk", Family: "candle", Inputs: hlc, Params: params(modelP(ema), tokenP("atr_model_type", sma), floatP("multiplier", "2"), periodP("20")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return table(KeltnerChannelBulk(h, l, c, a.model(), a.token("atr_model_type"), a.float("multiplier"), a.period()))
	}},
	{Name: "supertrend_single", Family: "candle", Inputs: hlc, Params: params(modelP(sma), floatP("multiplier", "3")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return scalar(SupertrendSingle(h, l, c, a.model(), a.float("multiplier")))
	}},
	{Name: "supertrend_bulk", Family: "candle", Inputs: hlc, Params: params(modelP(sma), floatP("multiplier", "3"), periodP("10")), invoke: func(a *args) (Result, error) {
		h, l, c := a.hlc()
		return series(SupertrendBulk(h, l, c, a.model(), a.float("multiplier"), a.period()))
	}},
	{Name: "heikin_ashi_bulk", Family: "candle", Inputs: ohlc, invoke: func(a *args) (Result, error) {
		return table(HeikinAshiBulk(a.input("open"), a.input("high"), a.input("low"), a.input("close")))
	}},

	// correlation
	{Name: "correlate_asset_prices_single", Family: "correlation", Inputs: roles("a", "b"), Params: params(modelP(sma), deviationP(std)), invoke: func(a *args) (Result, error) {
		return scalar(CorrelateAssetPricesSingle(a.input("a"), a.input("b"), a.model(), a.deviation()))
	}},
	{Name: "correlate_asset_prices_bulk", Family: "correlation", Inputs: roles("a", "b"), Params: params(modelP(sma), deviationP(std), periodP("20")), invoke: func(a *args) (Result, error) {
		return series(CorrelateAssetPricesBulk(a.input("a"), a.input("b"), a.model(), a.deviation(), a.period()))
	}},

	// chart
	{Name: "peaks", Family: "chart", Inputs: prices, Params: params(periodP("5"), intP("closest_neighbor", "1")), invoke: func(a *args) (Result, error) {
		return extremaResult(Peaks(a.prices(), a.period(), a.int("closest_neighbor")))
	}},
	{Name: "valleys", Family: "chart", Inputs: prices, Params: params(periodP("5"), intP("closest_neighbor", "1")), invoke: func(a *args) (Result, error) {
		return extremaResult(Valleys(a.prices(), a.period(), a.int("closest_neighbor")))
	}},
	{Name: "peak_trend", Family: "chart", Inputs: prices, Params: params(periodP("5")), invoke: func(a *args) (Result, error) {
		return trend(PeakTrend(a.prices(), a.period()))
	}},
	{Name: "valley_trend", Family: "chart", Inputs: prices, Params: params(periodP("5")), invoke: func(a *args) (Result, error) {
		return trend(ValleyTrend(a.prices(), a.period()))
	}},
	{Name: "overall_trend", Family: "chart", Inputs: prices, invoke: func(a *args) (Result, error) {
		return trend(OverallTrend(a.prices()))
	}},
}

// Families lists the indicator families in catalog order.
func Families() []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range catalog {
		if !seen[e.Family] {
			seen[e.Family] = true
			out = append(out, e.Family)
		}
	}
	return out
}
