// Package integrator implements an embedded Runge-Kutta adaptive stepper
// driven by a pluggable Butcher tableau, with PI step-size control, FSAL
// reuse, event detection, and optional trajectory recording.
package integrator

// Tableau is a Butcher tableau for an embedded Runge-Kutta pair: a lower
// triangular matrix A, weights B (the higher-order solution), BHat (the
// lower-order embedded solution used for error estimation), and nodes C.
// DB = B - BHat is precomputed once at construction.
type Tableau struct {
	Name   string
	Stages int
	FSAL   bool
	A      [][]float64
	B      []float64
	BHat   []float64
	C      []float64
	DB     []float64
}

func newTableau(name string, fsal bool, a [][]float64, b, bhat, c []float64) *Tableau {
	db := make([]float64, len(b))
	for i := range b {
		db[i] = b[i] - bhat[i]
	}
	return &Tableau{Name: name, Stages: len(c), FSAL: fsal, A: a, B: b, BHat: bhat, C: c, DB: db}
}

// RK45 is a 6-stage Runge-Kutta-Fehlberg-family pair (Cash-Karp
// coefficients), fifth order with a fourth-order embedded estimate.
var RK45 = newTableau("RK45", false,
	[][]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{3.0 / 10, -9.0 / 10, 6.0 / 5},
		{-11.0 / 54, 5.0 / 2, -70.0 / 27, 35.0 / 27},
		{1631.0 / 55296, 175.0 / 512, 575.0 / 13824, 44275.0 / 110592, 253.0 / 4096},
	},
	[]float64{37.0 / 378, 0, 250.0 / 621, 125.0 / 594, 0, 512.0 / 1771},
	[]float64{2825.0 / 27648, 0, 18575.0 / 48384, 13525.0 / 55296, 277.0 / 14336, 1.0 / 4},
	[]float64{0, 1.0 / 5, 3.0 / 10, 3.0 / 5, 1, 7.0 / 8},
)

// RKF45 is the classical 6-stage Fehlberg 4(5) pair.
var RKF45 = newTableau("RKF45", false,
	[][]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	},
	[]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55},
	[]float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0},
	[]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2},
)

// DOP45 is the 7-stage Dormand-Prince 5(4) pair. It is FSAL: its 7th and
// final stage evaluates f at the accepted solution, so the next step can
// reuse it as its first stage.
var DOP45 = newTableau("DOP45", true,
	[][]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	},
	[]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0},
	[]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40},
	[]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1},
)

// RKF78 is the classical 13-stage Fehlberg 7(8) pair.
var RKF78 = newTableau("RKF78", false,
	[][]float64{
		{},
		{2.0 / 27},
		{1.0 / 36, 1.0 / 12},
		{1.0 / 24, 0, 1.0 / 8},
		{5.0 / 12, 0, -25.0 / 16, 25.0 / 16},
		{1.0 / 20, 0, 0, 1.0 / 4, 1.0 / 5},
		{-25.0 / 108, 0, 0, 125.0 / 108, -65.0 / 27, 125.0 / 54},
		{31.0 / 300, 0, 0, 0, 61.0 / 225, -2.0 / 9, 13.0 / 900},
		{2, 0, 0, -53.0 / 6, 704.0 / 45, -107.0 / 9, 67.0 / 90, 3},
		{-91.0 / 108, 0, 0, 23.0 / 108, -976.0 / 135, 311.0 / 54, -19.0 / 60, 17.0 / 6, -1.0 / 12},
		{2383.0 / 4100, 0, 0, -341.0 / 164, 4496.0 / 1025, -301.0 / 82, 2133.0 / 4100, 45.0 / 82, 45.0 / 164, 18.0 / 41},
		{3.0 / 205, 0, 0, 0, 0, -6.0 / 41, -3.0 / 205, -3.0 / 41, 3.0 / 41, 6.0 / 41, 0},
		{-1777.0 / 4100, 0, 0, -341.0 / 164, 4496.0 / 1025, -289.0 / 82, 2193.0 / 4100, 51.0 / 82, 33.0 / 164, 12.0 / 41, 0, 1},
	},
	[]float64{0, 0, 0, 0, 0, 34.0 / 105, 9.0 / 35, 9.0 / 35, 9.0 / 280, 9.0 / 280, 0, 41.0 / 840, 41.0 / 840},
	[]float64{41.0 / 840, 0, 0, 0, 0, 34.0 / 105, 9.0 / 35, 9.0 / 35, 9.0 / 280, 9.0 / 280, 41.0 / 840, 0, 0},
	[]float64{0, 2.0 / 27, 1.0 / 9, 1.0 / 6, 5.0 / 12, 1.0 / 2, 5.0 / 6, 1.0 / 6, 2.0 / 3, 1.0 / 3, 1, 0, 1},
)

// DOP78 is the 13-stage Prince-Dormand 8(7) pair (Hairer, Norsett, Wanner
// form, commonly distributed as "DOP853"'s lower-order 8(7) relative).
// Unlike DOP45 it is not FSAL: A's final row differs from B, so the last
// stage is not evaluated at the accepted solution, and each step evaluates
// its own first stage.
var DOP78 = newTableau("DOP78", false,
	[][]float64{
		{},
		{1.0 / 18},
		{1.0 / 48, 1.0 / 16},
		{1.0 / 32, 0, 3.0 / 32},
		{5.0 / 16, 0, -75.0 / 64, 75.0 / 64},
		{3.0 / 80, 0, 0, 3.0 / 16, 3.0 / 20},
		{29443841.0 / 614563906, 0, 0, 77736538.0 / 692538347, -28693883.0 / 1125000000, 23124283.0 / 1800000000},
		{16016141.0 / 946692911, 0, 0, 61564180.0 / 158732637, 22789713.0 / 633445777, 545815736.0 / 2771057229, -180193667.0 / 1043307555},
		{39632708.0 / 573591083, 0, 0, -433636366.0 / 683701615, -421739975.0 / 2616292301, 100302831.0 / 723423059, 790204164.0 / 839813087, 800635310.0 / 3783071287},
		{246121993.0 / 1340847787, 0, 0, -37695042795.0 / 15268766246, -309121744.0 / 1061227803, -12992083.0 / 490766935, 6005943493.0 / 2108947869, 393006217.0 / 1396673457, 123872331.0 / 1001029789},
		{-1028468189.0 / 846180014, 0, 0, 8478235783.0 / 508512852, 1311729495.0 / 1432422823, -10304129995.0 / 1701304382, -48777925059.0 / 3047939560, 15336726248.0 / 1032824649, -45442868181.0 / 3398467696, 3065993473.0 / 597172653},
		{185892177.0 / 718116043, 0, 0, -3185094517.0 / 667107341, -477755414.0 / 1098053517, -703635378.0 / 230739211, 5731566787.0 / 1027545527, 5232866602.0 / 850066563, -4093664535.0 / 808688257, 3962137247.0 / 1805957418, 65686358.0 / 487910083},
		{403863854.0 / 491063109, 0, 0, -5068492393.0 / 434740067, -411421997.0 / 543043805, 652783627.0 / 914296604, 11173962825.0 / 925320556, -13158990841.0 / 6184727034, 3936647629.0 / 1978049680, -160528059.0 / 685178525, 248638103.0 / 1413531060, 0},
	},
	[]float64{14005451.0 / 335480064, 0, 0, 0, 0, -59238493.0 / 1068277825, 181606767.0 / 758867731, 561292985.0 / 797845732, -1041891430.0 / 1371343529, 760417239.0 / 1151165299, 118820643.0 / 751138087, -528747749.0 / 2220607170, 1.0 / 4},
	[]float64{13451932.0 / 455176623, 0, 0, 0, 0, -808719846.0 / 976000145, 1757004468.0 / 5645159321, 656045339.0 / 265891186, -3867574721.0 / 1518517206, 465885868.0 / 322736535, 53011238.0 / 667516719, 2.0 / 45, 0},
	[]float64{0, 1.0 / 18, 1.0 / 12, 1.0 / 8, 5.0 / 16, 3.0 / 8, 59.0 / 400, 93.0 / 200, 5490023248.0 / 9719169821, 13.0 / 20, 1201146811.0 / 1299019798, 1, 1},
)

// ByName returns the tableau registered under name (case-sensitive:
// "RK45", "RKF45", "RKF78", "DOP45", "DOP78"), or nil if unknown.
func ByName(name string) *Tableau {
	switch name {
	case "RK45":
		return RK45
	case "RKF45":
		return RKF45
	case "RKF78":
		return RKF78
	case "DOP45":
		return DOP45
	case "DOP78":
		return DOP78
	default:
		return nil
	}
}
